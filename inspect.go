package huffman

import (
	"bufio"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Info summarizes a compressed stream without decoding its body.
type Info struct {
	Header     Header
	Tree       *Tree
	BodyBytes  int64
	BodyDigest uint64
}

// Inspect reads and validates the header of a compressed stream, rebuilds
// its code tree, and fingerprints the packed body with xxhash64.
func Inspect(r io.Reader) (Info, error) {
	in := bufio.NewReader(r)

	h, err := ReadHeader(in)
	if err != nil {
		return Info{}, err
	}

	t := &Tree{}
	if err := t.Init(h.Entries); err != nil {
		return Info{}, err
	}

	d := xxhash.New()
	n, err := io.Copy(d, in)
	if err != nil {
		return Info{}, err
	}

	// Every code is between MinSize and MaxSize bits long, which bounds the
	// body length.
	lo := ceilDiv8(uint64(h.Total) * uint64(t.MinSize()))
	hi := ceilDiv8(uint64(h.Total) * uint64(t.MaxSize()))
	if uint64(n) < lo || uint64(n) > hi {
		return Info{}, corruptf("body is %d bytes, want %d to %d for %d symbols", n, lo, hi, h.Total)
	}

	return Info{Header: h, Tree: t, BodyBytes: n, BodyDigest: d.Sum64()}, nil
}
