package cpu

import (
	"errors"

	"github.com/ezrec/mymix/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty      = errors.New(f("ip empty"))
	ErrAddressRange = errors.New(f("address out of range"))
	ErrDivideByZero = errors.New(f("divide by zero"))

	// Instruction decode errors
	ErrOpcodeDecode        = errors.New(f("decode"))
	ErrOpcodeUnimplemented = errors.New(f("not yet supported"))
	ErrOpcodeModifier      = errors.New(f("modifier"))
	ErrOpcodeIndex         = errors.New(f("index"))
)

// ErrOpcode identifies the raw instruction word that failed.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v %v", Word(eo).String(), Word(eo).Fields().String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is an effective address outside of memory.
type ErrAddress uint64

func (ea ErrAddress) Error() string {
	return f("address %v out of range", uint64(ea))
}

func (ea ErrAddress) Is(err error) bool {
	if err == ErrAddressRange {
		return true
	}
	_, ok := err.(ErrAddress)
	return ok
}
