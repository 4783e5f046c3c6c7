package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// nodeIndex addresses a node inside a nodeArena.
type nodeIndex int32

const noNode nodeIndex = -1

// treeNode is either a leaf (left == right == noNode) holding one byte value,
// or an internal node owning exactly two children.
type treeNode struct {
	weight uint64
	left   nodeIndex
	right  nodeIndex
	symbol byte
}

func (n *treeNode) isLeaf() bool {
	return n.left == noNode
}

type nodeArena struct {
	nodes []treeNode
}

func (a *nodeArena) leaf(symbol byte, weight uint64) nodeIndex {
	a.nodes = append(a.nodes, treeNode{weight: weight, left: noNode, right: noNode, symbol: symbol})
	return nodeIndex(len(a.nodes) - 1)
}

func (a *nodeArena) join(left, right nodeIndex) nodeIndex {
	lw, rw := a.nodes[left].weight, a.nodes[right].weight

	// saturating addition
	sum := lw + rw
	if sum < lw {
		sum = ^uint64(0)
	}

	a.nodes = append(a.nodes, treeNode{weight: sum, left: left, right: right})
	return nodeIndex(len(a.nodes) - 1)
}

// codeTree is the tree built during compression.  It lives only for the
// duration of one compression run.
type codeTree struct {
	arena nodeArena
	root  nodeIndex
}

// buildTree builds a code tree for freqs whose leaves are no deeper than
// MaxCodeSize.  When the optimal tree is too deep, the frequencies are
// flattened by halving (never below 1) and the tree is rebuilt.
func buildTree(freqs Frequencies) *codeTree {
	for {
		t := buildOptimalTree(&freqs)
		if t.depth() <= MaxCodeSize {
			return t
		}
		for symbol, freq := range freqs {
			if freq != 0 {
				freqs[symbol] = freq/2 + freq&1
			}
		}
	}
}

// buildOptimalTree greedily merges the two lightest nodes until one remains.
// freqs must contain at least one non-zero count.
func buildOptimalTree(freqs *Frequencies) *codeTree {
	numLeaves := freqs.Distinct()
	assert.Assertf(numLeaves > 0, "cannot build a Huffman tree with no symbols")

	t := &codeTree{arena: nodeArena{nodes: make([]treeNode, 0, 2*numLeaves-1)}}
	q := newNodeQueue(&t.arena, numLeaves)
	for symbol, freq := range freqs {
		if freq != 0 {
			q.Insert(t.arena.leaf(byte(symbol), freq))
		}
	}

	for q.Size() > 1 {
		left := q.ExtractMin()
		right := q.ExtractMin()
		q.Insert(t.arena.join(left, right))
	}

	t.root = q.ExtractMin()
	return t
}

// depth returns the length of the longest root-to-leaf path.
func (t *codeTree) depth() int {
	type stackItem struct {
		node  nodeIndex
		depth int
	}

	var maxDepth int
	stack := []stackItem{{node: t.root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &t.arena.nodes[top.node]
		if node.isLeaf() {
			if maxDepth < top.depth {
				maxDepth = top.depth
			}
			continue
		}
		stack = append(stack,
			stackItem{node: node.right, depth: top.depth + 1},
			stackItem{node: node.left, depth: top.depth + 1})
	}
	return maxDepth
}
