package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffzip"
)

func newDecompressCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a file made by compress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			in, out := args[0], args[1]

			stats, err := decompressFile(in, out)
			if err != nil {
				return err
			}

			a.log.Debug("decompressed",
				"input", in,
				"output", out,
				"symbols", stats.Symbols,
				"raw", stats.RawBytes,
				"compressed", stats.CompressedBytes())
			fmt.Fprintln(cmd.OutOrStdout(), "File decompressed successfully.")
			return nil
		},
	}
}

func decompressFile(inPath, outPath string) (huffman.Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return huffman.Stats{}, err
	}
	defer in.Close()

	var stats huffman.Stats
	err = writeAtomic(outPath, func(w io.Writer) error {
		var err error
		stats, err = huffman.Decompress(w, in)
		return err
	})
	return stats, err
}
