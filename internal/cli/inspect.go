package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffzip"
)

func newInspectCommand(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Describe a compressed file without decompressing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := huffman.Inspect(f)
			if err != nil {
				return err
			}

			a.log.Debug("inspected",
				"input", args[0],
				"symbols", info.Tree.Len(),
				"body", info.BodyBytes)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "File %s:\n", args[0])
			fmt.Fprintf(w, "\tSymbols: %d\n", len(info.Header.Entries))
			fmt.Fprintf(w, "\tRaw: %d\n", info.Header.Total)
			fmt.Fprintf(w, "\tHeader: %d\n", info.Header.Size())
			fmt.Fprintf(w, "\tBody: %d\n", info.BodyBytes)
			fmt.Fprintf(w, "\tCode sizes: %d .. %d\n", info.Tree.MinSize(), info.Tree.MaxSize())
			fmt.Fprintf(w, "\tBody xxhash64: %016x\n", info.BodyDigest)
			if dump {
				if _, err := info.Tree.Dump(w); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dump, "dump", "d", false, "Print the code table")
	return cmd
}
