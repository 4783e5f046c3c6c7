package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	packed := filepath.Join(dir, "input.huf")
	unpacked := filepath.Join(dir, "output.txt")

	data := bytes.Repeat([]byte("so much depends upon a red wheel barrow\n"), 50)
	require.NoError(t, os.WriteFile(src, data, 0o644))

	out, err := run(t, "compress", src, packed)
	require.NoError(t, err)
	require.Contains(t, out, "File compressed successfully.")

	out, err = run(t, "decompress", packed, unpacked)
	require.NoError(t, err)
	require.Contains(t, out, "File decompressed successfully.")

	got, err := os.ReadFile(unpacked)
	require.NoError(t, err)
	require.Equal(t, data, got)

	requireOnlyFiles(t, dir, "input.txt", "input.huf", "output.txt")
}

func TestUsageErrors(t *testing.T) {
	type testRow struct {
		name string
		args []string
	}

	testData := [...]testRow{
		{name: "no-args", args: nil},
		{name: "unknown-command", args: []string{"squash", "a", "b"}},
		{name: "too-few", args: []string{"compress", "a"}},
		{name: "too-many", args: []string{"decompress", "a", "b", "c"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := run(t, row.args...)
			require.Error(t, err)
			require.Regexp(t, `Usage:|--help`, out)
		})
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "compress", filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	require.ErrorIs(t, err, os.ErrNotExist)
	requireOnlyFiles(t, dir)
}

func TestCorruptInputLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.huf")
	dst := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(src, []byte{3, 0, 0, 0, 6, 0, 0, 0, 'a'}, 0o644))

	out, err := run(t, "decompress", src, dst)
	require.Error(t, err)
	require.NotContains(t, out, "Usage:")
	requireOnlyFiles(t, dir, "bad.huf")
}

func TestCorruptInputKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.huf")
	dst := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(src, []byte{1, 2, 3}, 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("keep me"), 0o644))

	_, err := run(t, "decompress", src, dst)
	require.Error(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(got))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in")
	packed := filepath.Join(dir, "in.huf")
	require.NoError(t, os.WriteFile(src, []byte("aaabbc"), 0o644))

	_, err := run(t, "compress", src, packed)
	require.NoError(t, err)

	out, err := run(t, "inspect", "--dump", packed)
	require.NoError(t, err)
	require.Contains(t, out, "\tSymbols: 3\n")
	require.Contains(t, out, "\tRaw: 6\n")
	require.Contains(t, out, "\tHeader: 35\n")
	require.Contains(t, out, "\tBody: 2\n")
	require.Contains(t, out, "\tDecode(\"0\") = 97\n")
}

func TestVerbose(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in")
	require.NoError(t, os.WriteFile(src, []byte("aaabbc"), 0o644))

	out, err := run(t, "-v", "compress", src, filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Contains(t, out, "msg=compressed")
	require.Contains(t, out, "symbols=3")

	t.Setenv(VerboseEnv, "true")
	out, err = run(t, "compress", src, filepath.Join(dir, "out2"))
	require.NoError(t, err)
	require.Contains(t, out, "msg=compressed")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "huffzip version "+Version+"\n", out)
}

func requireOnlyFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	require.ElementsMatch(t, names, got)
}
