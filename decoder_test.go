package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestTree() *Tree {
	var t Tree
	err := t.Init([]Entry{
		{Symbol: 5, Code: MakeCode(1, 0x0)},
		{Symbol: 2, Code: MakeCode(3, 0x4)},
		{Symbol: 3, Code: MakeCode(3, 0x5)},
		{Symbol: 0, Code: MakeCode(4, 0xc)},
		{Symbol: 1, Code: MakeCode(4, 0xd)},
		{Symbol: 4, Code: MakeCode(3, 0x7)},
	})
	if err != nil {
		panic(err)
	}
	return &t
}

func TestTree_Decode(t *testing.T) {
	tree := makeTestTree()

	type testRow struct {
		size  byte
		bits  uint32
		sym   byte
		found bool
	}

	testData := [...]testRow{
		{size: 0, bits: 0x0},
		{size: 1, bits: 0x0, sym: 5, found: true},
		{size: 1, bits: 0x1},
		{size: 2, bits: 0x0},
		{size: 2, bits: 0x3},
		{size: 3, bits: 0x4, sym: 2, found: true},
		{size: 3, bits: 0x5, sym: 3, found: true},
		{size: 3, bits: 0x6},
		{size: 3, bits: 0x7, sym: 4, found: true},
		{size: 4, bits: 0xc, sym: 0, found: true},
		{size: 4, bits: 0xd, sym: 1, found: true},
		{size: 4, bits: 0xf},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(hc.String(), func(t *testing.T) {
			sym, found := tree.Decode(hc)
			require.Equal(t, row.found, found)
			if row.found {
				require.Equal(t, row.sym, sym)
			}
		})
	}
}

func TestTree_Dump(t *testing.T) {
	tree := makeTestTree()

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"0\") = 5\n",
		"\tDecode(\"100\") = 2\n",
		"\tDecode(\"101\") = 3\n",
		"\tDecode(\"111\") = 4\n",
		"\tDecode(\"1100\") = 0\n",
		"\tDecode(\"1101\") = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	require.Equal(t, expectDump, buf.String())
	require.Equal(t, 6, tree.Len())
}

func TestTree_MatchesCodeTable(t *testing.T) {
	var freqs Frequencies
	freqs.Add([]byte("she sells sea shells by the sea shore"))
	ct := NewCodeTable(freqs)

	var tree Tree
	require.NoError(t, tree.Init(ct.Entries()))
	for _, e := range ct.Entries() {
		sym, found := tree.Decode(e.Code)
		require.True(t, found)
		require.Equal(t, e.Symbol, sym)
	}
	require.Equal(t, ct.MinSize(), tree.MinSize())
	require.Equal(t, ct.MaxSize(), tree.MaxSize())
}

func TestTree_SingleSymbol(t *testing.T) {
	var tree Tree
	require.NoError(t, tree.Init([]Entry{{Symbol: 0xff, Code: MakeCode(1, 0)}}))

	sym, found := tree.Decode(MakeCode(1, 0))
	require.True(t, found)
	require.Equal(t, byte(0xff), sym)

	_, found = tree.Decode(MakeCode(1, 1))
	require.False(t, found)
}

func TestTree_InitRejects(t *testing.T) {
	type testRow struct {
		name    string
		entries []Entry
	}

	testData := [...]testRow{
		{
			name: "duplicate-symbol",
			entries: []Entry{
				{Symbol: 'a', Code: MakeCode(1, 0)},
				{Symbol: 'a', Code: MakeCode(1, 1)},
			},
		},
		{
			name: "duplicate-code",
			entries: []Entry{
				{Symbol: 'a', Code: MakeCode(2, 1)},
				{Symbol: 'b', Code: MakeCode(2, 1)},
			},
		},
		{
			name: "extends-leaf",
			entries: []Entry{
				{Symbol: 'a', Code: MakeCode(1, 0)},
				{Symbol: 'b', Code: MakeCode(2, 1)},
			},
		},
		{
			name: "prefix-of-earlier",
			entries: []Entry{
				{Symbol: 'a', Code: MakeCode(3, 2)},
				{Symbol: 'b', Code: MakeCode(2, 1)},
			},
		},
		{
			name: "empty-code",
			entries: []Entry{
				{Symbol: 'a', Code: Code{}},
			},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var tree Tree
			err := tree.Init(row.entries)
			require.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
