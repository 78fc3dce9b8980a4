package cpu

import (
	"fmt"
)

// CodeClass is the type of opcode family.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	CLASS_ARITH = CodeClass(0) // arith
	CLASS_LOAD  = CodeClass(1) // load
	CLASS_STORE = CodeClass(2) // store
	CLASS_JUMP  = CodeClass(3) // jump
	CLASS_INCR  = CodeClass(4) // incr
	CLASS_CMP   = CodeClass(5) // cmp
)

// CodeRegister selects a register of the register file.
type CodeRegister int

//go:generate go tool stringer -linecomment -type=CodeRegister
const (
	REG_A  = CodeRegister(0) // a
	REG_I1 = CodeRegister(1) // i1
	REG_I2 = CodeRegister(2) // i2
	REG_I3 = CodeRegister(3) // i3
	REG_I4 = CodeRegister(4) // i4
	REG_I5 = CodeRegister(5) // i5
	REG_I6 = CodeRegister(6) // i6
	REG_X  = CodeRegister(7) // x
	REG_J  = CodeRegister(8) // j
)

// CodeIncOp is an increment/decrement/enter modifier.
type CodeIncOp int

//go:generate go tool stringer -linecomment -type=CodeIncOp
const (
	INC_OP_ADD   = CodeIncOp(0) // inc
	INC_OP_SUB   = CodeIncOp(1) // dec
	INC_OP_ENTER = CodeIncOp(2) // ent
)

// CodeJumpOp is a jump modifier.
type CodeJumpOp int

//go:generate go tool stringer -linecomment -type=CodeJumpOp
const (
	JMP_OP_SAVE        = CodeJumpOp(0) // jmp
	JMP_OP_NOSAVE      = CodeJumpOp(1) // jsj
	JMP_OP_LESS        = CodeJumpOp(4) // jl
	JMP_OP_EQUAL       = CodeJumpOp(5) // je
	JMP_OP_GREATER     = CodeJumpOp(6) // jg
	JMP_OP_NOT_LESS    = CodeJumpOp(7) // jge
	JMP_OP_NOT_EQUAL   = CodeJumpOp(8) // jne
	JMP_OP_NOT_GREATER = CodeJumpOp(9) // jle
)

// Opcodes.
const (
	OP_ADD = byte(1)
	OP_SUB = byte(2)
	OP_MUL = byte(3)
	OP_DIV = byte(4)

	OP_LDA = byte(8)
	OP_LD1 = byte(9)
	OP_LD2 = byte(10)
	OP_LD3 = byte(11)
	OP_LD4 = byte(12)
	OP_LD5 = byte(13)
	OP_LD6 = byte(14)
	OP_LDX = byte(15)

	OP_STA = byte(24)
	OP_ST1 = byte(25)
	OP_ST2 = byte(26)
	OP_ST3 = byte(27)
	OP_ST4 = byte(28)
	OP_ST5 = byte(29)
	OP_ST6 = byte(30)
	OP_STX = byte(31)
	OP_STJ = byte(32)
	OP_STZ = byte(33)

	OP_JMP     = byte(39)
	OP_SPECIAL = byte(40) // Reserved, not implemented.

	OP_INCA = byte(48)
	OP_INC1 = byte(49)
	OP_INC2 = byte(50)
	OP_INC3 = byte(51)
	OP_INC4 = byte(52)
	OP_INC5 = byte(53)
	OP_INC6 = byte(54)
	OP_INCX = byte(55)

	OP_CMPA = byte(56)
	OP_CMP1 = byte(57)
	OP_CMP2 = byte(58)
	OP_CMP3 = byte(59)
	OP_CMP4 = byte(60)
	OP_CMP5 = byte(61)
	OP_CMP6 = byte(62)
	OP_CMPX = byte(63)
)

// family is an entry of the opcode range table.
type family struct {
	class CodeClass
	first byte // First opcode of the range.
	last  byte // Last opcode of the range, inclusive.
}

var families = [...]family{
	{CLASS_ARITH, OP_ADD, OP_DIV},
	{CLASS_LOAD, OP_LDA, OP_LDX},
	{CLASS_STORE, OP_STA, OP_STZ},
	{CLASS_JUMP, OP_JMP, 47},
	{CLASS_INCR, OP_INCA, OP_INCX},
	{CLASS_CMP, OP_CMPA, OP_CMPX},
}

// Class returns the opcode family of the opcode.
func Class(opcode byte) (class CodeClass, ok bool) {
	for _, fm := range families {
		if opcode >= fm.first && opcode <= fm.last {
			return fm.class, true
		}
	}

	return
}

// arithOps maps arithmetic opcodes to their mnemonics.
var arithOps = map[byte]string{
	OP_ADD: "add",
	OP_SUB: "sub",
	OP_MUL: "mul",
	OP_DIV: "div",
}

// Mnemonic returns a short human readable name of the instruction,
// or the empty string if the word does not decode.
func (fl Fields) Mnemonic() string {
	class, ok := Class(fl.Opcode)
	if !ok {
		return ""
	}

	switch class {
	case CLASS_ARITH:
		return arithOps[fl.Opcode]
	case CLASS_LOAD:
		return "ld" + CodeRegister(fl.Opcode-OP_LDA).String()
	case CLASS_STORE:
		if fl.Opcode == OP_STZ {
			return "stz"
		}
		return "st" + CodeRegister(fl.Opcode-OP_STA).String()
	case CLASS_JUMP:
		if fl.Opcode != OP_JMP {
			return ""
		}
		return CodeJumpOp(fl.Modifier).String()
	case CLASS_INCR:
		return CodeIncOp(fl.Modifier).String() + CodeRegister(fl.Opcode-OP_INCA).String()
	case CLASS_CMP:
		return "cmp" + CodeRegister(fl.Opcode-OP_CMPA).String()
	}

	return ""
}

// String returns the instruction as 'mnemonic address,index(modifier)'.
func (fl Fields) String() string {
	name := fl.Mnemonic()
	if len(name) == 0 {
		name = fmt.Sprintf("op%d", fl.Opcode)
	}
	return fmt.Sprintf("%v %d,%d(%d)", name, fl.Address, fl.Index, fl.Modifier)
}
