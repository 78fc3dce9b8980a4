package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mymix/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(cpu.IP_START, emu.Ip())
	assert.Equal(0, emu.Ticks())
}

func TestEmulatorLoad(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := emu.Load(map[int]cpu.Word{0: 1, 99: 2})
	assert.NoError(err)
	assert.Equal(cpu.Word(1), emu.Cpu.Memory[0])
	assert.Equal(cpu.Word(2), emu.Cpu.Memory[99])

	err = emu.Load(map[int]cpu.Word{cpu.MEMORY_SIZE: 1})
	assert.ErrorIs(err, cpu.ErrAddressRange)

	err = emu.Load(map[int]cpu.Word{-1: 1})
	assert.ErrorIs(err, cpu.ErrAddressRange)
}

func TestEmulatorDemo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load(Demo())
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)

	data := emu.Cpu.Memory[DEMO_DATA]
	assert.Equal(cpu.WordFromBytes([8]byte{16, 15, 14, 13, 12, 11, 10, 9}), data)

	assert.True(emu.Cpu.Halted())
	assert.Equal(cpu.Word(5), emu.Cpu.I[0])
	assert.Equal(cpu.CMP_EQUAL, emu.Cpu.Cmp)

	// Each pass stores the data word plus the previous sum.
	for n := range 5 {
		assert.Equal(data*cpu.Word(n+2), emu.Cpu.Memory[DEMO_DATA+1+n], n)
	}
	assert.Equal(cpu.Word(0), emu.Cpu.Memory[DEMO_DATA+6])
	assert.Equal(data*6, emu.Cpu.A)

	// The last taken 'jne' was at 6; 'jsj' leaves j alone.
	assert.Equal(cpu.Word(7), emu.Cpu.J)

	// 4 passes of 6 instructions, then 7 for the final pass.
	assert.Equal(4*6+7, emu.Ticks())

	// Halted CPUs stay halted.
	done, err := emu.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(4*6+7, emu.Ticks())
}

func TestEmulatorStep(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load(Demo())
	assert.NoError(err)

	assert.Equal(cpu.MakeWord(DEMO_DATA, 0, 0, cpu.OP_LDA), emu.Code())

	done, err := emu.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(2, emu.Ip())
	assert.Equal(emu.Cpu.Memory[DEMO_DATA], emu.Cpu.A)

	done, err = emu.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(3, emu.Ip())
	assert.Equal(emu.Cpu.Memory[DEMO_DATA]*2, emu.Cpu.A)

	done, err = emu.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(emu.Cpu.A, emu.Cpu.Memory[DEMO_DATA+1])
}

func TestEmulatorHaltOnJump(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// Memory[0] is never fetched.
	err := emu.Load(map[int]cpu.Word{
		0: cpu.MakeWord(0, 0, 0, 255),
		1: cpu.MakeWord(0, 0, byte(cpu.JMP_OP_SAVE), cpu.OP_JMP),
	})
	assert.NoError(err)

	done, err := emu.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(cpu.Word(2), emu.Cpu.J)
	assert.Equal(cpu.IP_HALT, emu.Ip())

	err = emu.Run()
	assert.NoError(err)
	assert.Equal(1, emu.Ticks())
}

func TestEmulatorRunLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// Jump to self forever.
	err := emu.Load(map[int]cpu.Word{
		1: cpu.MakeWord(1, 0, byte(cpu.JMP_OP_NOSAVE), cpu.OP_JMP),
	})
	assert.NoError(err)

	done, err := emu.RunLimit(100)
	assert.NoError(err)
	assert.False(done)
	assert.Equal(100, emu.Ticks())
	assert.Equal(1, emu.Ip())

	emu.Reset()
	err = emu.Load(Demo())
	assert.NoError(err)

	done, err = emu.RunLimit(1000)
	assert.NoError(err)
	assert.True(done)
	assert.Equal(4*6+7, emu.Ticks())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code cpu.Word
		err  error
	}){
		{"decode", cpu.MakeWord(0, 0, 0, 5), cpu.ErrOpcodeDecode},
		{"special", cpu.MakeWord(0, 0, 0, cpu.OP_SPECIAL), cpu.ErrOpcodeUnimplemented},
		{"modifier", cpu.MakeWord(0, 0, 3, cpu.OP_JMP), cpu.ErrOpcodeModifier},
		{"index", cpu.MakeWord(0, 7, 0, cpu.OP_LDA), cpu.ErrOpcodeIndex},
		{"range", cpu.MakeWord(cpu.MEMORY_SIZE, 0, 0, cpu.OP_LDA), cpu.ErrAddressRange},
		{"divide", cpu.MakeWord(20, 0, 0, cpu.OP_DIV), cpu.ErrDivideByZero},
	}

	for _, entry := range table {
		emu := NewEmulator()
		err := emu.Load(map[int]cpu.Word{
			1: cpu.MakeWord(0, 0, byte(cpu.INC_OP_ENTER), cpu.OP_INCA),
			2: entry.code,
		})
		assert.NoError(err, entry.name)

		err = emu.Run()
		assert.ErrorIs(err, entry.err, entry.name)

		var rt *ErrRuntime
		assert.True(errors.As(err, &rt), entry.name)
		if rt != nil {
			assert.Equal(2, rt.Ip, entry.name)
			assert.Equal(entry.code, rt.Code, entry.name)
		}

		// The failing instruction did not advance the CPU.
		assert.Equal(2, emu.Ip(), entry.name)
		assert.Equal(1, emu.Ticks(), entry.name)
	}
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("10", defines["DEMO_DATA"])
	assert.Equal("50", defines["DEMO_LIMIT"])
	assert.Equal("100", defines["MEMORY_SIZE"])
	assert.Equal("39", defines["OP_JMP"])
}
