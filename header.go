package huffman

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// byteOrder is fixed so that files move between platforms unchanged.
var byteOrder = binary.LittleEndian

// Entry is one row of the serialized code table.
type Entry struct {
	Symbol byte
	Code   Code
}

// String returns the string representation of this Entry.
func (e Entry) String() string {
	return fmt.Sprintf("%d=%s", e.Symbol, e.Code)
}

// Header is everything that precedes the packed body of a compressed stream.
type Header struct {
	// Total is the number of original bytes.
	Total uint32

	// Entries holds one code per distinct byte value, in tree order.
	Entries []Entry
}

// Size returns the encoded length of the header in bytes.
func (h Header) Size() int64 {
	return wireCountsSize + int64(len(h.Entries))*wireEntrySize
}

type wireCounts struct {
	Unique int32
	Total  int32
}

type wireEntry struct {
	Symbol uint8
	Size   int32
	Bits   int32
}

const (
	wireCountsSize = 8
	wireEntrySize  = 9
)

// WriteHeader serializes h to w.
func WriteHeader(w io.Writer, h Header) error {
	if h.Total > math.MaxInt32 {
		return fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrTooLarge, h.Total, math.MaxInt32)
	}
	if len(h.Entries) > NumSymbols {
		return fmt.Errorf("header lists %d symbols, max %d", len(h.Entries), NumSymbols)
	}

	counts := wireCounts{Unique: int32(len(h.Entries)), Total: int32(h.Total)}
	if err := binary.Write(w, byteOrder, counts); err != nil {
		return err
	}

	wire := make([]wireEntry, len(h.Entries))
	for i, e := range h.Entries {
		if !e.Code.Valid() {
			return fmt.Errorf("symbol %d has invalid code %s", e.Symbol, e.Code)
		}
		wire[i] = wireEntry{Symbol: e.Symbol, Size: int32(e.Code.Size), Bits: int32(e.Code.Bits)}
	}
	return binary.Write(w, byteOrder, wire)
}

// ReadHeader parses a header from r.  Malformed or truncated headers are
// reported as errors wrapping ErrCorrupt.
func ReadHeader(r io.Reader) (Header, error) {
	var counts wireCounts
	if err := binary.Read(r, byteOrder, &counts); err != nil {
		return Header{}, truncated("header", err)
	}

	switch {
	case counts.Unique < 0 || counts.Unique > NumSymbols:
		return Header{}, corruptf("symbol count %d out of range [0, %d]", counts.Unique, NumSymbols)
	case counts.Total < 0:
		return Header{}, corruptf("negative byte count %d", counts.Total)
	case counts.Unique == 0 && counts.Total != 0:
		return Header{}, corruptf("%d bytes declared with no symbols", counts.Total)
	case counts.Unique != 0 && counts.Total == 0:
		return Header{}, corruptf("%d symbols declared for empty input", counts.Unique)
	}

	wire := make([]wireEntry, counts.Unique)
	if err := binary.Read(r, byteOrder, wire); err != nil {
		return Header{}, truncated("code table", err)
	}

	h := Header{Total: uint32(counts.Total), Entries: make([]Entry, len(wire))}
	for i, we := range wire {
		if we.Size < 1 || we.Size > MaxCodeSize {
			return Header{}, corruptf("symbol %d: code length %d out of range [1, %d]", we.Symbol, we.Size, MaxCodeSize)
		}
		hc := MakeCode(byte(we.Size), uint32(we.Bits))
		if !hc.Valid() {
			return Header{}, corruptf("symbol %d: code %d does not fit in %d bits", we.Symbol, uint32(we.Bits), we.Size)
		}
		h.Entries[i] = Entry{Symbol: we.Symbol, Code: hc}
	}
	return h, nil
}

func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return corruptf("truncated %s", what)
	}
	return err
}
