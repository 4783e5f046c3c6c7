package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffzip"
)

func newCompressCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			in, out := args[0], args[1]

			stats, err := compressFile(in, out)
			if err != nil {
				return err
			}

			a.log.Debug("compressed",
				"input", in,
				"output", out,
				"symbols", stats.Symbols,
				"raw", stats.RawBytes,
				"compressed", stats.CompressedBytes(),
				"maxCodeSize", stats.MaxCodeSize)
			fmt.Fprintln(cmd.OutOrStdout(), "File compressed successfully.")
			return nil
		},
	}
}

func compressFile(inPath, outPath string) (huffman.Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return huffman.Stats{}, err
	}
	defer in.Close()

	var stats huffman.Stats
	err = writeAtomic(outPath, func(w io.Writer) error {
		var err error
		stats, err = huffman.Compress(w, in)
		return err
	})
	return stats, err
}
