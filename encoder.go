package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps every byte value to its Huffman code.  It is derived from a
// code tree during compression and is what the BitPacker consults for each
// input byte.
type CodeTable struct {
	codes   [NumSymbols]Code
	order   []byte
	minSize byte
	maxSize byte
}

// NewCodeTable builds the Huffman tree for freqs and derives its codes.
// Byte values with a frequency of 0 get no code.  If every frequency is 0,
// the table is empty.
func NewCodeTable(freqs Frequencies) *CodeTable {
	ct := &CodeTable{}
	if freqs.Distinct() == 0 {
		return ct
	}
	ct.assign(buildTree(freqs))
	return ct
}

// Encode returns the code for symbol.  The zero Code is returned for symbols
// that do not appear in the table.
func (ct *CodeTable) Encode(symbol byte) Code {
	return ct.codes[symbol]
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return len(ct.order)
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Entries lists the codes in tree order (left subtree before right
// subtree), which is the order they are written to the header.
func (ct *CodeTable) Entries() []Entry {
	out := make([]Entry, len(ct.order))
	for i, symbol := range ct.order {
		out[i] = Entry{Symbol: symbol, Code: ct.codes[symbol]}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc := ct.codes[symbol]; hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// assign walks the tree depth-first, appending 0 when descending left and 1
// when descending right; each leaf receives the path that led to it.
func (ct *CodeTable) assign(t *codeTree) {
	// A tree made of a single leaf has no edges to walk.  The lone symbol
	// gets the one-bit code "0".
	if root := &t.arena.nodes[t.root]; root.isLeaf() {
		ct.add(root.symbol, MakeCode(1, 0))
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node nodeIndex
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, MaxCodeSize)

	processChild := func(child nodeIndex, hc Code) {
		node := &t.arena.nodes[child]
		if !node.isLeaf() {
			stack = append(stack, stackItem{node: child, code: hc})
			return
		}
		ct.add(node.symbol, hc)
	}

	stack = append(stack, stackItem{node: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		node := &t.arena.nodes[top.node]
		switch x {
		case 0:
			processChild(node.left, top.code.Append(0))
		case 1:
			processChild(node.right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

func (ct *CodeTable) add(symbol byte, hc Code) {
	assert.Assertf(hc.Valid(), "invalid code %s for symbol %d", hc, symbol)
	assert.Assertf(ct.codes[symbol].Size == 0, "symbol %d assigned twice", symbol)

	ct.codes[symbol] = hc
	if len(ct.order) == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.order = append(ct.order, symbol)
}
