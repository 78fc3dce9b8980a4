package emulator

import (
	"github.com/ezrec/mymix/cpu"
)

// Demo returns the memory image of the demo program.
//
// The program adds the data word to the running sum in a loop, storing
// each sum in the cell after the previous one, until i1 reaches the
// loop limit:
//
//	01: lda  DATA
//	02: add  DATA      ; arithmetic indexes with i[0], which is i1
//	03: sta  DATA+1,1
//	04: inc1 1
//	05: cmp1 LIMIT
//	06: jne  1
//	07: jsj  0         ; halt
func Demo() map[int]cpu.Word {
	return map[int]cpu.Word{
		1: cpu.MakeWord(DEMO_DATA, 0, 0, cpu.OP_LDA),
		2: cpu.MakeWord(DEMO_DATA, 0, 0, cpu.OP_ADD),
		3: cpu.MakeWord(DEMO_DATA+1, 1, 0, cpu.OP_STA),
		4: cpu.MakeWord(1, 0, byte(cpu.INC_OP_ADD), cpu.OP_INC1),
		5: cpu.MakeWord(DEMO_LIMIT, 0, 0, cpu.OP_CMP1),
		6: cpu.MakeWord(cpu.IP_START, 0, byte(cpu.JMP_OP_NOT_EQUAL), cpu.OP_JMP),
		7: cpu.MakeWord(cpu.IP_HALT, 0, byte(cpu.JMP_OP_NOSAVE), cpu.OP_JMP),

		DEMO_DATA:  cpu.WordFromBytes([8]byte{16, 15, 14, 13, 12, 11, 10, 9}),
		DEMO_LIMIT: 5,
	}
}
