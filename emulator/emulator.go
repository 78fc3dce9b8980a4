// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mymix/cpu"
	"github.com/ezrec/mymix/internal"
)

const (
	DEMO_DATA  = 10 // Address of the demo program's data word.
	DEMO_LIMIT = 50 // Address of the demo program's loop limit.
)

var _emulator_defines = map[string]string{
	"DEMO_DATA":  fmt.Sprintf("%v", DEMO_DATA),
	"DEMO_LIMIT": fmt.Sprintf("%v", DEMO_LIMIT),
}

// Emulator state. CPU + loaded image.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Load writes a memory image of address to word.
func (emu *Emulator) Load(image map[int]cpu.Word) (err error) {
	for addr, word := range image {
		if addr < 0 || addr >= cpu.MEMORY_SIZE {
			return cpu.ErrAddress(addr)
		}
		if emu.Verbose {
			log.Printf("emulator: load %02d: %v", addr, word)
		}
		emu.Cpu.Memory[addr] = word
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Word {
	code, err := emu.Cpu.FetchCode()
	if err != nil {
		return 0
	}

	return code
}

// Step performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Step() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	code := emu.Code()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Code: code, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()
	return
}

// Run steps the emulator until halted.
// A program that never jumps to IP_HALT never returns.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Step()
		if err != nil {
			return
		}
	}

	return
}

// RunLimit steps the emulator until halted, or at most limit ticks.
func (emu *Emulator) RunLimit(limit int) (done bool, err error) {
	for range limit {
		done, err = emu.Step()
		if done || err != nil {
			return
		}
	}

	done = emu.Cpu.Halted()
	return
}
