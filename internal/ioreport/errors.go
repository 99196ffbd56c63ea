package ioreport

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

func UnknownError(name string) error {
	msg := "Unknown report <em>%s</em>, use one of: %s"
	vars := []any{name, strings.Join(Reports(), ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportUnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown report %q", fn, name),
	}
}

func ParseError(name string, err error) error {
	msg := "Cannot parse <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse name: %w", fn, err),
	}
}

func WriteError(report string, err error) error {
	msg := "Cannot write report <em>%s</em>"
	vars := []any{report}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write report: %w", fn, err),
	}
}
