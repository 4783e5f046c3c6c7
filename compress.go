package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
)

// Stats describes one compression or decompression run.
type Stats struct {
	// Symbols is the number of distinct byte values.
	Symbols int

	// RawBytes is the length of the uncompressed data.
	RawBytes uint64

	// HeaderBytes is the length of the header.
	HeaderBytes int64

	// BodyBytes is the length of the packed body, padding included.
	BodyBytes uint64

	// MaxCodeSize is the bit length of the longest code in use.
	MaxCodeSize byte
}

// CompressedBytes is the total length of the compressed stream.
func (s Stats) CompressedBytes() uint64 {
	return uint64(s.HeaderBytes) + s.BodyBytes
}

// Compress reads r twice, once to count byte frequencies and once to encode
// it, and writes the compressed stream to w.  r is rewound to the position
// it had on entry before the second pass.
//
// Empty input produces a header with no symbols and no body.
//
func Compress(w io.Writer, r io.ReadSeeker) (Stats, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return Stats{}, err
	}

	freqs, err := CountFrequencies(r)
	if err != nil {
		return Stats{}, err
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return Stats{}, err
	}

	return compress(w, r, freqs)
}

// CompressBytes is the in-memory form of Compress.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compress(w io.Writer, r io.Reader, freqs Frequencies) (Stats, error) {
	total := freqs.Total()
	if total > math.MaxInt32 {
		return Stats{}, fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrTooLarge, total, math.MaxInt32)
	}

	table := NewCodeTable(freqs)
	h := Header{Total: uint32(total), Entries: table.Entries()}

	out := bufio.NewWriter(w)
	if err := WriteHeader(out, h); err != nil {
		return Stats{}, err
	}

	p := NewBitPacker(out)
	if err := p.Pack(r, table); err != nil {
		return Stats{}, err
	}
	if err := p.Close(); err != nil {
		return Stats{}, err
	}
	if err := out.Flush(); err != nil {
		return Stats{}, err
	}

	return Stats{
		Symbols:     table.Len(),
		RawBytes:    total,
		HeaderBytes: h.Size(),
		BodyBytes:   ceilDiv8(p.Bits()),
		MaxCodeSize: table.MaxSize(),
	}, nil
}

// Decompress reads a compressed stream from r and writes the original bytes
// to w.  Malformed input is reported as an error wrapping ErrCorrupt; some
// output may already have been written to w by then.
func Decompress(w io.Writer, r io.Reader) (Stats, error) {
	in := bufio.NewReader(r)

	h, err := ReadHeader(in)
	if err != nil {
		return Stats{}, err
	}

	var t Tree
	if err := t.Init(h.Entries); err != nil {
		return Stats{}, err
	}

	u := NewBitUnpacker(in)
	if err := u.Unpack(w, &t, h.Total); err != nil {
		return Stats{}, err
	}
	if err := u.Finish(); err != nil {
		return Stats{}, err
	}

	return Stats{
		Symbols:     t.Len(),
		RawBytes:    uint64(h.Total),
		HeaderBytes: h.Size(),
		BodyBytes:   ceilDiv8(u.Bits()),
		MaxCodeSize: t.MaxSize(),
	}, nil
}

// DecompressBytes is the in-memory form of Decompress.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
