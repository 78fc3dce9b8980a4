package cpu

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	MEMORY_SIZE = 100 // Number of words of memory.
	IP_HALT     = 0   // Instruction pointer value that halts execution.
	IP_START    = 1   // Instruction pointer after reset.
)

// Comparison is the tri-state comparison flag.
type Comparison int

//go:generate go tool stringer -linecomment -type=Comparison
const (
	CMP_LESS    = Comparison(-1) // less
	CMP_EQUAL   = Comparison(0)  // equal
	CMP_GREATER = Comparison(1)  // greater
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"IP_HALT":     fmt.Sprintf("%v", IP_HALT),
	"IP_START":    fmt.Sprintf("%v", IP_START),

	"OP_ADD": fmt.Sprintf("%v", OP_ADD),
	"OP_SUB": fmt.Sprintf("%v", OP_SUB),
	"OP_MUL": fmt.Sprintf("%v", OP_MUL),
	"OP_DIV": fmt.Sprintf("%v", OP_DIV),

	"OP_LDA": fmt.Sprintf("%v", OP_LDA),
	"OP_LD1": fmt.Sprintf("%v", OP_LD1),
	"OP_LD2": fmt.Sprintf("%v", OP_LD2),
	"OP_LD3": fmt.Sprintf("%v", OP_LD3),
	"OP_LD4": fmt.Sprintf("%v", OP_LD4),
	"OP_LD5": fmt.Sprintf("%v", OP_LD5),
	"OP_LD6": fmt.Sprintf("%v", OP_LD6),
	"OP_LDX": fmt.Sprintf("%v", OP_LDX),

	"OP_STA": fmt.Sprintf("%v", OP_STA),
	"OP_ST1": fmt.Sprintf("%v", OP_ST1),
	"OP_ST2": fmt.Sprintf("%v", OP_ST2),
	"OP_ST3": fmt.Sprintf("%v", OP_ST3),
	"OP_ST4": fmt.Sprintf("%v", OP_ST4),
	"OP_ST5": fmt.Sprintf("%v", OP_ST5),
	"OP_ST6": fmt.Sprintf("%v", OP_ST6),
	"OP_STX": fmt.Sprintf("%v", OP_STX),
	"OP_STJ": fmt.Sprintf("%v", OP_STJ),
	"OP_STZ": fmt.Sprintf("%v", OP_STZ),

	"OP_JMP": fmt.Sprintf("%v", OP_JMP),

	"OP_INCA": fmt.Sprintf("%v", OP_INCA),
	"OP_INC1": fmt.Sprintf("%v", OP_INC1),
	"OP_INC2": fmt.Sprintf("%v", OP_INC2),
	"OP_INC3": fmt.Sprintf("%v", OP_INC3),
	"OP_INC4": fmt.Sprintf("%v", OP_INC4),
	"OP_INC5": fmt.Sprintf("%v", OP_INC5),
	"OP_INC6": fmt.Sprintf("%v", OP_INC6),
	"OP_INCX": fmt.Sprintf("%v", OP_INCX),

	"OP_CMPA": fmt.Sprintf("%v", OP_CMPA),
	"OP_CMP1": fmt.Sprintf("%v", OP_CMP1),
	"OP_CMP2": fmt.Sprintf("%v", OP_CMP2),
	"OP_CMP3": fmt.Sprintf("%v", OP_CMP3),
	"OP_CMP4": fmt.Sprintf("%v", OP_CMP4),
	"OP_CMP5": fmt.Sprintf("%v", OP_CMP5),
	"OP_CMP6": fmt.Sprintf("%v", OP_CMP6),
	"OP_CMPX": fmt.Sprintf("%v", OP_CMPX),

	"INC_OP_ADD":   fmt.Sprintf("%v", int(INC_OP_ADD)),
	"INC_OP_SUB":   fmt.Sprintf("%v", int(INC_OP_SUB)),
	"INC_OP_ENTER": fmt.Sprintf("%v", int(INC_OP_ENTER)),

	"JMP_OP_SAVE":        fmt.Sprintf("%v", int(JMP_OP_SAVE)),
	"JMP_OP_NOSAVE":      fmt.Sprintf("%v", int(JMP_OP_NOSAVE)),
	"JMP_OP_LESS":        fmt.Sprintf("%v", int(JMP_OP_LESS)),
	"JMP_OP_EQUAL":       fmt.Sprintf("%v", int(JMP_OP_EQUAL)),
	"JMP_OP_GREATER":     fmt.Sprintf("%v", int(JMP_OP_GREATER)),
	"JMP_OP_NOT_LESS":    fmt.Sprintf("%v", int(JMP_OP_NOT_LESS)),
	"JMP_OP_NOT_EQUAL":   fmt.Sprintf("%v", int(JMP_OP_NOT_EQUAL)),
	"JMP_OP_NOT_GREATER": fmt.Sprintf("%v", int(JMP_OP_NOT_GREATER)),
}

// Cpu is the simulation context for the machine: register file, memory,
// comparison flag and instruction pointer.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A   Word       // Accumulator.
	X   Word       // Extension register.
	I   [6]Word    // Index registers i1..i6.
	J   Word       // Jump return register.
	Cmp Comparison // Comparison flag.

	Memory [MEMORY_SIZE]Word // Memory.
	Ip     int               // Current instruction pointer.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Sets the comparison flag to equal.
// - Sets the instruction pointer to IP_START.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	*cpu = Cpu{
		Verbose: cpu.Verbose,
		Cmp:     CMP_EQUAL,
		Ip:      IP_START,
	}
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Halted returns true once the instruction pointer has reached IP_HALT.
func (cpu *Cpu) Halted() bool {
	return cpu.Ip == IP_HALT
}

// register returns the storage of a register.
func (cpu *Cpu) register(reg CodeRegister) *Word {
	switch reg {
	case REG_A:
		return &cpu.A
	case REG_I1, REG_I2, REG_I3, REG_I4, REG_I5, REG_I6:
		return &cpu.I[reg-REG_I1]
	case REG_X:
		return &cpu.X
	case REG_J:
		return &cpu.J
	}

	panic("unknown register")
}

// Register returns the value of a register.
func (cpu *Cpu) Register(reg CodeRegister) Word {
	return *cpu.register(reg)
}

// Cells returns the non-zero memory cells, in address order.
func (cpu *Cpu) Cells() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for addr, word := range cpu.Memory {
			if word == 0 {
				continue
			}
			if !yield(addr, word) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = "registers:\n"
	regs := []CodeRegister{
		REG_A, REG_X,
		REG_I1, REG_I2, REG_I3, REG_I4, REG_I5, REG_I6,
		REG_J,
	}
	for _, reg := range regs {
		text += fmt.Sprintf("% 5s: %v\n", reg.String(), cpu.Register(reg))
	}
	text += fmt.Sprintf("% 5s: %v\n", "cmp", cpu.Cmp)
	text += fmt.Sprintf("% 5s: %v\n", "ip", cpu.Ip)

	text += "memory:\n"
	for addr, word := range cpu.Cells() {
		text += fmt.Sprintf("% 5d: %v\n", addr, word)
	}

	return
}

// FetchCode fetches the instruction at the instruction pointer.
func (cpu *Cpu) FetchCode() (code Word, err error) {
	if cpu.Halted() {
		err = ErrIpEmpty
		return
	}

	if cpu.Ip < 0 || cpu.Ip >= MEMORY_SIZE {
		log.Printf("Ip %d > memory len %d", cpu.Ip, MEMORY_SIZE)
		err = ErrAddress(cpu.Ip)
		return
	}

	code = cpu.Memory[cpu.Ip]
	return
}

// Tick executes a single CPU instruction cycle.
// Returns ErrIpEmpty, without fetching, if the CPU is halted.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	return
}

// executor handles one opcode family, returning the next instruction pointer.
type executor func(cpu *Cpu, fl Fields, next_ip int) (int, error)

var executors = [...]executor{
	CLASS_ARITH: (*Cpu).doArith,
	CLASS_LOAD:  (*Cpu).doLoad,
	CLASS_STORE: (*Cpu).doStore,
	CLASS_JUMP:  (*Cpu).doJump,
	CLASS_INCR:  (*Cpu).doIncr,
	CLASS_CMP:   (*Cpu).doCmp,
}

// Execute executes a single decoded instruction, and advances the
// instruction pointer.
func (cpu *Cpu) Execute(code Word) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	fl := code.Fields()

	if cpu.Verbose {
		log.Printf("%02d: %v %v", cpu.Ip, code, fl)
	}

	class, ok := Class(fl.Opcode)
	if !ok {
		err = ErrOpcodeDecode
		return
	}

	next_ip, err := executors[class](cpu, fl, cpu.Ip+1)
	if err != nil {
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}

// indexed returns the effective address of an instruction.
// Index 0 is unindexed, index 1..6 adds i1..i6.
func (cpu *Cpu) indexed(fl Fields) (addr uint64, err error) {
	switch {
	case fl.Index == 0:
		addr = fl.Address
	case int(fl.Index) <= len(cpu.I):
		addr = fl.Address + uint64(cpu.I[fl.Index-1])
	default:
		err = ErrOpcodeIndex
	}

	return
}

// cell returns the memory cell at an effective address.
func (cpu *Cpu) cell(addr uint64) (word *Word, err error) {
	if addr >= MEMORY_SIZE {
		err = ErrAddress(addr)
		return
	}

	word = &cpu.Memory[addr]
	return
}

// doArith performs add, sub, mul and div on the accumulator.
//
// NOTE: The arithmetic family selects the index register as i[index],
// not i[index-1] as every other family does, so index 0 adds i1.
func (cpu *Cpu) doArith(fl Fields, next_ip int) (ip int, err error) {
	if int(fl.Index) >= len(cpu.I) {
		err = ErrOpcodeIndex
		return
	}

	word, err := cpu.cell(fl.Address + uint64(cpu.I[fl.Index]))
	if err != nil {
		return
	}
	value := *word

	switch fl.Opcode {
	case OP_ADD:
		cpu.A += value
	case OP_SUB:
		cpu.A -= value
	case OP_MUL:
		cpu.A *= value
	case OP_DIV:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		cpu.A /= value
	default:
		err = ErrOpcodeDecode
		return
	}

	ip = next_ip
	return
}

// doLoad copies a memory cell into a register.
func (cpu *Cpu) doLoad(fl Fields, next_ip int) (ip int, err error) {
	if fl.Opcode < OP_LDA || fl.Opcode > OP_LDX {
		err = ErrOpcodeDecode
		return
	}

	addr, err := cpu.indexed(fl)
	if err != nil {
		return
	}

	word, err := cpu.cell(addr)
	if err != nil {
		return
	}

	*cpu.register(CodeRegister(fl.Opcode - OP_LDA)) = *word

	ip = next_ip
	return
}

// doStore copies a register, or zero, into a memory cell.
func (cpu *Cpu) doStore(fl Fields, next_ip int) (ip int, err error) {
	if fl.Opcode < OP_STA || fl.Opcode > OP_STZ {
		err = ErrOpcodeDecode
		return
	}

	addr, err := cpu.indexed(fl)
	if err != nil {
		return
	}

	word, err := cpu.cell(addr)
	if err != nil {
		return
	}

	if fl.Opcode == OP_STZ {
		*word = 0
	} else {
		*word = cpu.Register(CodeRegister(fl.Opcode - OP_STA))
	}

	ip = next_ip
	return
}

// doIncr adds, subtracts or enters the effective address into a register.
func (cpu *Cpu) doIncr(fl Fields, next_ip int) (ip int, err error) {
	if fl.Opcode < OP_INCA || fl.Opcode > OP_INCX {
		err = ErrOpcodeDecode
		return
	}

	value, err := cpu.indexed(fl)
	if err != nil {
		return
	}

	reg := cpu.register(CodeRegister(fl.Opcode - OP_INCA))

	switch CodeIncOp(fl.Modifier) {
	case INC_OP_ADD:
		*reg += Word(value)
	case INC_OP_SUB:
		*reg -= Word(value)
	case INC_OP_ENTER:
		*reg = Word(value)
	default:
		err = ErrOpcodeModifier
		return
	}

	ip = next_ip
	return
}

// doCmp compares a register against a memory cell, unsigned.
func (cpu *Cpu) doCmp(fl Fields, next_ip int) (ip int, err error) {
	if fl.Opcode < OP_CMPA || fl.Opcode > OP_CMPX {
		err = ErrOpcodeDecode
		return
	}

	addr, err := cpu.indexed(fl)
	if err != nil {
		return
	}

	word, err := cpu.cell(addr)
	if err != nil {
		return
	}

	value := cpu.Register(CodeRegister(fl.Opcode - OP_CMPA))
	cpu.Cmp = Comparison(cmp.Compare(value, *word))

	ip = next_ip
	return
}

// jumpCond describes a jump modifier.
type jumpCond struct {
	save  bool                    // Save the return address in J.
	taken func(c Comparison) bool // Condition on the comparison flag.
}

func jumpAlways(Comparison) bool { return true }

var jumpConds = map[CodeJumpOp]jumpCond{
	JMP_OP_SAVE:        {true, jumpAlways},
	JMP_OP_NOSAVE:      {false, jumpAlways},
	JMP_OP_LESS:        {true, func(c Comparison) bool { return c == CMP_LESS }},
	JMP_OP_EQUAL:       {true, func(c Comparison) bool { return c == CMP_EQUAL }},
	JMP_OP_GREATER:     {true, func(c Comparison) bool { return c == CMP_GREATER }},
	JMP_OP_NOT_LESS:    {true, func(c Comparison) bool { return c != CMP_LESS }},
	JMP_OP_NOT_EQUAL:   {true, func(c Comparison) bool { return c != CMP_EQUAL }},
	JMP_OP_NOT_GREATER: {true, func(c Comparison) bool { return c != CMP_GREATER }},
}

// doJump redirects the instruction pointer.
func (cpu *Cpu) doJump(fl Fields, next_ip int) (ip int, err error) {
	switch fl.Opcode {
	case OP_JMP:
		// pass
	case OP_SPECIAL:
		err = ErrOpcodeUnimplemented
		return
	default:
		err = ErrOpcodeDecode
		return
	}

	cond, ok := jumpConds[CodeJumpOp(fl.Modifier)]
	if !ok {
		err = ErrOpcodeModifier
		return
	}

	addr, err := cpu.indexed(fl)
	if err != nil {
		return
	}

	if !cond.taken(cpu.Cmp) {
		ip = next_ip
		return
	}

	if addr >= MEMORY_SIZE {
		err = ErrAddress(addr)
		return
	}

	if cond.save {
		cpu.J = Word(next_ip)
	}

	ip = int(addr)
	return
}
