package huffman

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// BitPacker packs variable-length codes into bytes, most significant bit
// first.  The final partial byte is padded with zero bits by Close.
type BitPacker struct {
	out  *bufio.Writer
	bw   *bitio.Writer
	bits uint64
}

// NewBitPacker returns a BitPacker writing to w.
func NewBitPacker(w io.Writer) *BitPacker {
	out, ok := w.(*bufio.Writer)
	if !ok {
		out = bufio.NewWriter(w)
	}
	return &BitPacker{out: out, bw: bitio.NewWriter(out)}
}

// WriteCode appends the bits of hc.
func (p *BitPacker) WriteCode(hc Code) error {
	if err := p.bw.WriteBits(uint64(hc.Bits), hc.Size); err != nil {
		return err
	}
	p.bits += uint64(hc.Size)
	return nil
}

// Pack reads r to EOF and appends the code of every byte.  Every byte of r
// must have a code in table.
func (p *BitPacker) Pack(r io.Reader, table *CodeTable) error {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		hc := table.Encode(b)
		if hc.Size == 0 {
			return fmt.Errorf("byte %#02x has no code; did the input change between passes?", b)
		}
		if err := p.WriteCode(hc); err != nil {
			return err
		}
	}
}

// Bits returns the number of code bits written so far, not counting padding.
func (p *BitPacker) Bits() uint64 {
	return p.bits
}

// Close pads the last byte with zero bits and flushes it.  It does not close
// the underlying writer.
func (p *BitPacker) Close() error {
	if err := p.bw.Close(); err != nil {
		return err
	}
	return p.out.Flush()
}

// BitUnpacker replays a packed body through a Tree.
type BitUnpacker struct {
	in   *bufio.Reader
	br   *bitio.Reader
	bits uint64
}

// NewBitUnpacker returns a BitUnpacker reading from r.
func NewBitUnpacker(r io.Reader) *BitUnpacker {
	in, ok := r.(*bufio.Reader)
	if !ok {
		in = bufio.NewReader(r)
	}
	return &BitUnpacker{in: in, br: bitio.NewReader(in)}
}

// Unpack decodes exactly count bytes into w.  It walks t from the root one
// bit at a time: 0 goes left, 1 goes right, and every leaf emits its byte
// and restarts the walk at the root.  It stops as soon as count bytes have
// been emitted and does not read any further.
//
// A bit that leads to a missing child, or a body that ends early, is
// reported as an error wrapping ErrCorrupt.
//
func (u *BitUnpacker) Unpack(w io.Writer, t *Tree, count uint32) error {
	out := bufio.NewWriter(w)
	pos := rootNode
	for produced := uint32(0); produced < count; {
		bit, err := u.br.ReadBool()
		if err != nil {
			return truncated("body", err)
		}
		u.bits++

		var b uint32
		if bit {
			b = 1
		}
		next, ok := t.step(pos, b)
		if !ok {
			return corruptf("bit %d leads off the code tree after %d of %d bytes", u.bits-1, produced, count)
		}
		pos = next

		if node := &t.nodes[pos]; node.leaf {
			if err := out.WriteByte(node.symbol); err != nil {
				return err
			}
			produced++
			pos = rootNode
		}
	}
	return out.Flush()
}

// Bits returns the number of body bits consumed so far.
func (u *BitUnpacker) Bits() uint64 {
	return u.bits
}

// Finish checks that only zero padding remains after the last decoded bit:
// the rest of the current byte must be zero and no whole bytes may follow.
func (u *BitUnpacker) Finish() error {
	if pad := uint8((8 - u.bits%8) % 8); pad != 0 {
		v, err := u.br.ReadBits(pad)
		if err != nil {
			return truncated("body", err)
		}
		if v != 0 {
			return corruptf("non-zero padding bits %#x", v)
		}
	}

	extra, err := io.Copy(io.Discard, u.in)
	if err != nil {
		return err
	}
	if extra != 0 {
		return corruptf("%d unexpected bytes after the body", extra)
	}
	return nil
}
