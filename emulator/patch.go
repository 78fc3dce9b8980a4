package emulator

import (
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mymix/cpu"
)

// builtinWord is the 'word(address, index=0, modifier=0, opcode=0)' builtin.
func builtinWord(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address starlark.Int
	var index, modifier, opcode int

	err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"address", &address,
		"index?", &index,
		"modifier?", &modifier,
		"opcode?", &opcode)
	if err != nil {
		return nil, err
	}

	addr, ok := address.Uint64()
	if !ok {
		return nil, ErrParseExpression(address.String())
	}

	word := cpu.MakeWord(addr, byte(index), byte(modifier), byte(opcode))

	return starlark.MakeUint64(uint64(word)), nil
}

// Eval evaluates a Starlark integer expression to a word.
// All defines are predeclared, along with the 'word()' builtin.
func (emu *Emulator) Eval(expr string) (value cpu.Word, err error) {
	thread := starlark.Thread{Name: "patch"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"word": starlark.NewBuiltin("word", builtinWord),
	}
	for key, str := range emu.Defines() {
		v64, perr := strconv.ParseUint(str, 0, 64)
		if perr != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeUint64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "patch", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = cpu.Word(st_uint64)
	return
}

// Patch writes a single memory cell from an 'ADDR=EXPR' text,
// where both sides are expressions understood by Eval.
func (emu *Emulator) Patch(text string) (err error) {
	lhs, rhs, ok := strings.Cut(text, "=")
	if !ok || len(strings.TrimSpace(lhs)) == 0 || len(strings.TrimSpace(rhs)) == 0 {
		err = ErrPatchSyntax
		return
	}

	addr, err := emu.Eval(strings.TrimSpace(lhs))
	if err != nil {
		return
	}

	value, err := emu.Eval(strings.TrimSpace(rhs))
	if err != nil {
		return
	}

	if addr >= cpu.MEMORY_SIZE {
		err = cpu.ErrAddress(addr)
		return
	}

	if emu.Verbose {
		log.Printf("emulator: patch %02d: %v", addr, value)
	}

	emu.Cpu.Memory[addr] = value
	return
}
