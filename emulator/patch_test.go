package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mymix/cpu"
)

func TestEmulatorEval(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	table := [](struct {
		expr  string
		value cpu.Word
	}){
		{"0", 0},
		{"42", 42},
		{"0x10 | 0x01", 0x11},
		{"DEMO_LIMIT + 1", 51},
		{"MEMORY_SIZE - 1", 99},
		{"OP_LDA", cpu.Word(cpu.OP_LDA)},
		{"word(10)", cpu.MakeWord(10, 0, 0, 0)},
		{"word(10, 0, 0, OP_LDA)", cpu.MakeWord(10, 0, 0, cpu.OP_LDA)},
		{"word(DEMO_DATA + 1, index = 1, opcode = OP_STA)", cpu.MakeWord(DEMO_DATA+1, 1, 0, cpu.OP_STA)},
		{"word(1, modifier = JMP_OP_NOT_EQUAL, opcode = OP_JMP)", cpu.MakeWord(1, 0, byte(cpu.JMP_OP_NOT_EQUAL), cpu.OP_JMP)},
		{"0xffffffffffffffff", 0xffffffffffffffff},
	}

	for _, entry := range table {
		value, err := emu.Eval(entry.expr)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, value, entry.expr)
	}
}

func TestEmulatorEval_Invalid(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	for _, expr := range []string{
		"-1",
		"'text'",
		"1 << 64",
		"UNDEFINED",
		"word()",
		"word(-1)",
		"(",
	} {
		_, err := emu.Eval(expr)
		assert.Error(err, expr)
	}

	_, err := emu.Eval("None")
	assert.ErrorIs(err, ErrParseExpression("None"))
}

func TestEmulatorPatch(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load(Demo())
	assert.NoError(err)

	err = emu.Patch("DEMO_LIMIT=3")
	assert.NoError(err)
	assert.Equal(cpu.Word(3), emu.Cpu.Memory[DEMO_LIMIT])

	err = emu.Patch(" DEMO_DATA = 7 ")
	assert.NoError(err)
	assert.Equal(cpu.Word(7), emu.Cpu.Memory[DEMO_DATA])

	err = emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.Word(3), emu.Cpu.I[0])
	assert.Equal(cpu.Word(14), emu.Cpu.Memory[DEMO_DATA+1])
	assert.Equal(cpu.Word(21), emu.Cpu.Memory[DEMO_DATA+2])
	assert.Equal(cpu.Word(28), emu.Cpu.Memory[DEMO_DATA+3])
	assert.Equal(cpu.Word(0), emu.Cpu.Memory[DEMO_DATA+4])
}

func TestEmulatorPatch_Invalid(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	for _, text := range []string{"", "10", "=5", "10=", " = "} {
		err := emu.Patch(text)
		assert.ErrorIs(err, ErrPatchSyntax, text)
	}

	err := emu.Patch("MEMORY_SIZE=1")
	assert.ErrorIs(err, cpu.ErrAddressRange)

	err = emu.Patch("10=UNDEFINED")
	assert.Error(err)
	assert.Equal(cpu.Word(0), emu.Cpu.Memory[10])
}
