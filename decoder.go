package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Tree is the code tree rebuilt from a header during decompression.  It is
// built top-down by inserting one root-to-leaf path per header entry,
// creating intermediate nodes on demand, and is read-only once Init returns.
type Tree struct {
	nodes   []decodeNode
	entries []Entry
	minSize byte
	maxSize byte
}

// decodeNode children are indexes into Tree.nodes.  Index 0 is the root,
// which is never anyone's child, so 0 doubles as "absent".
type decodeNode struct {
	children [2]int32
	symbol   byte
	leaf     bool
}

const rootNode int32 = 0

// Init initializes this Tree from a list of header entries.
//
// Entries must form a prefix-free code: no two entries may share a symbol,
// and no code may be a prefix of another.  Violations are reported as errors
// wrapping ErrCorrupt rather than silently overwriting earlier entries.
//
func (t *Tree) Init(entries []Entry) error {
	numEntries := uint32(len(entries))

	*t = Tree{
		nodes:   make([]decodeNode, 1, 1+numEntries*log2uint32(numEntries)),
		entries: make([]Entry, 0, numEntries),
	}

	var seen [NumSymbols]bool
	for _, e := range entries {
		if seen[e.Symbol] {
			return corruptf("symbol %d listed twice", e.Symbol)
		}
		seen[e.Symbol] = true
		if err := t.insert(e); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) insert(e Entry) error {
	hc := e.Code
	if !hc.Valid() {
		return corruptf("symbol %d has invalid code %s", e.Symbol, hc)
	}

	pos := rootNode
	for i := byte(0); i < hc.Size; i++ {
		if t.nodes[pos].leaf {
			return corruptf("code %s for symbol %d extends the code of symbol %d", hc, e.Symbol, t.nodes[pos].symbol)
		}
		bit := hc.Bit(i)
		next := t.nodes[pos].children[bit]
		if next == 0 {
			t.nodes = append(t.nodes, decodeNode{})
			next = int32(len(t.nodes) - 1)
			t.nodes[pos].children[bit] = next
		}
		pos = next
	}

	node := &t.nodes[pos]
	if node.leaf {
		return corruptf("code %s for symbol %d duplicates the code of symbol %d", hc, e.Symbol, node.symbol)
	}
	if node.children != [2]int32{} {
		return corruptf("code %s for symbol %d is a prefix of another code", hc, e.Symbol)
	}
	node.leaf = true
	node.symbol = e.Symbol

	if len(t.entries) == 0 {
		t.minSize = hc.Size
		t.maxSize = hc.Size
	} else if t.minSize > hc.Size {
		t.minSize = hc.Size
	} else if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
	t.entries = append(t.entries, e)
	return nil
}

// step follows one bit from pos.  ok is false if that child does not exist.
func (t *Tree) step(pos int32, bit uint32) (next int32, ok bool) {
	next = t.nodes[pos].children[bit&1]
	return next, next != 0
}

// Decode walks hc from the root.  found is true only if hc ends exactly on
// a leaf.
func (t *Tree) Decode(hc Code) (symbol byte, found bool) {
	if len(t.nodes) == 0 {
		return 0, false
	}
	pos := rootNode
	for i := byte(0); i < hc.Size; i++ {
		var ok bool
		if pos, ok = t.step(pos, hc.Bit(i)); !ok {
			return 0, false
		}
	}
	node := &t.nodes[pos]
	return node.symbol, node.leaf
}

// Len returns the number of symbols in the tree.
func (t *Tree) Len() int {
	return len(t.entries)
}

// MinSize is the bit length of the shortest legal code.
func (t *Tree) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest legal code.
func (t *Tree) MaxSize() byte {
	return t.maxSize
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	keys := make(byCode, len(t.entries))
	copy(keys, t.entries)
	keys.Sort()
	for _, e := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", e.Code, e.Symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Entry

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].Code, list[j].Code
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Bits < b.Bits
}

var _ sort.Interface = byCode(nil)

// }}}
