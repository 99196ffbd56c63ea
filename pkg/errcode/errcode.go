package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryError
	DBScanError

	// Schema errors
	SchemaGORMConnectionError
	SchemaMigrateError
	SchemaCollationError
	SchemaTruncateError

	// Input errors
	InputUnknownSourceError
	InputCSVHeaderError
	InputCSVRecordError
	InputPossiblyExtinctError
	InputStatusParseError

	// Cache errors
	CacheOpenError
	CacheReadError
	CacheWriteError

	// Import errors
	ImportOpenError
	ImportCopyError

	// Rules errors
	RulesReadError
	RulesParseError

	// Tree errors
	TreeEmptyLadderError
	TreeFinalizedError
	TreeNodeNotFoundError
	TreeSortOrderError
	TreeTransparentError

	// Output errors
	OutputUnknownFormatError
	OutputWriteError

	// Report errors
	ReportUnknownError
	ReportParseError
)
