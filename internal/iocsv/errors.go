package iocsv

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

func HeaderError(path string, fields int) error {
	msg := "File <em>%s</em> has %d fields, an IUCN export needs at least %d"
	vars := []any{path, fields, MinFields}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputCSVHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: wrong number of fields %d in %s", fn, fields, path,
		),
	}
}

func RecordError(path string, line int, err error) error {
	msg := "Cannot read line %d of <em>%s</em>"
	vars := []any{line, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputCSVRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad line %d: %w", fn, line, err),
	}
}

func PossiblyExtinctError(path string, err error) error {
	msg := "Cannot read possibly extinct list <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputPossiblyExtinctError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read possibly extinct: %w", fn, err),
	}
}
