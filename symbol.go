package huffman

import (
	"io"
)

// NumSymbols is the size of the alphabet: one symbol per byte value.
const NumSymbols = 256

// Frequencies holds the number of occurrences of each byte value.
type Frequencies [NumSymbols]uint64

// CountFrequencies reads r to EOF and tallies every byte.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	var freqs Frequencies
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		freqs.Add(buf[:n])
		if err == io.EOF {
			return freqs, nil
		}
		if err != nil {
			return freqs, err
		}
	}
}

// Add tallies every byte of p.
func (freqs *Frequencies) Add(p []byte) {
	for _, b := range p {
		freqs[b]++
	}
}

// Distinct returns the number of byte values with a non-zero count.
func (freqs *Frequencies) Distinct() int {
	var n int
	for _, f := range freqs {
		if f != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, f := range freqs {
		sum += f
	}
	return sum
}
