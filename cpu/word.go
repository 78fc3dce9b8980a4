package cpu

import (
	"encoding/binary"
	"fmt"
)

// Word is a 64-bit machine word, interpreted as data or as an instruction.
//
// As an instruction, the big-endian byte layout is:
//
//	[addr0 addr1 addr2 addr3 addr4 index modifier opcode]
type Word uint64

const (
	ADDRESS_BITS = 40                      // Width of the address field.
	ADDRESS_MASK = (1 << ADDRESS_BITS) - 1 // Mask of the address field.
)

// Fields is a decoded instruction word.
type Fields struct {
	Address  uint64 // Base address, bytes 0..4.
	Index    byte   // Index register selector, byte 5.
	Modifier byte   // Family sub-operation, byte 6.
	Opcode   byte   // Instruction family, byte 7.
}

// MakeWord encodes an instruction word.
// Address bits above ADDRESS_BITS are discarded.
func MakeWord(address uint64, index, modifier, opcode byte) Word {
	return Word(((address & ADDRESS_MASK) << 24) |
		(uint64(index) << 16) |
		(uint64(modifier) << 8) |
		uint64(opcode))
}

// WordFromBytes assembles a word from its big-endian byte sequence.
func WordFromBytes(b [8]byte) Word {
	return Word(binary.BigEndian.Uint64(b[:]))
}

// Bytes returns the big-endian byte sequence of the word.
func (w Word) Bytes() (b [8]byte) {
	binary.BigEndian.PutUint64(b[:], uint64(w))
	return
}

// Opcode returns the instruction family selector.
func (w Word) Opcode() byte {
	return w.Bytes()[7]
}

// Modifier returns the family sub-operation selector.
func (w Word) Modifier() byte {
	return w.Bytes()[6]
}

// Index returns the index register selector.
func (w Word) Index() byte {
	return w.Bytes()[5]
}

// Address returns the five high-order bytes as an unsigned integer.
func (w Word) Address() (address uint64) {
	b := w.Bytes()
	for _, v := range b[0:5] {
		address = (address << 8) | uint64(v)
	}
	return
}

// Fields decodes all instruction fields at once.
func (w Word) Fields() Fields {
	return Fields{
		Address:  w.Address(),
		Index:    w.Index(),
		Modifier: w.Modifier(),
		Opcode:   w.Opcode(),
	}
}

// Word re-encodes the fields.
func (fl Fields) Word() Word {
	return MakeWord(fl.Address, fl.Index, fl.Modifier, fl.Opcode)
}

// String renders the word as its big-endian byte sequence.
func (w Word) String() string {
	return fmt.Sprintf("%v", w.Bytes())
}
