package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code the header can carry: the code bits are
// stored in a 32-bit field.
const MaxCodeSize = 32

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit, which is also how the code
	// is written into the header.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one bit.
func (hc Code) Append(bit uint32) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | bit&1}
}

// Bit returns the i'th bit of the code, counting from the first.
func (hc Code) Bit(i byte) uint32 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix reports whether prefix is a leading part of hc.  Every Code has
// itself as a prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Valid reports whether the code has a legal size and no bits set outside
// of it.
func (hc Code) Valid() bool {
	if hc.Size == 0 || hc.Size > MaxCodeSize {
		return false
	}
	return hc.Size == 32 || hc.Bits>>hc.Size == 0
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
