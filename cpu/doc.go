// Package cpu implements the word codec and the machine for the mymix system.
//
// The machine consists of an instruction pointer, an accumulator (a), an
// extension register (x), six index registers (i1-i6), a jump return
// register (j), a tri-state comparison flag and 100 words of memory.
//
// Instructions are 64-bit words laid out big-endian as five bytes of
// address, then index, modifier and opcode bytes. Execution halts when the
// instruction pointer reaches address 0.
package cpu
