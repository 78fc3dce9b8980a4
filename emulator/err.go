package emulator

import (
	"errors"

	"github.com/ezrec/mymix/cpu"
	"github.com/ezrec/mymix/translate"
)

var f = translate.From

var (
	// Patch errors
	ErrPatchSyntax = errors.New(f("patch syntax"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   int
	Code cpu.Word
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrParseExpression is an expression that does not evaluate to a word.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}
