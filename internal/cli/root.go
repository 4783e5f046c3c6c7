// Package cli implements the huffzip command line.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// Version is the release reported by "huffzip version".
const Version = "1.0.0"

// VerboseEnv enables verbose logging when set to a true value.
const VerboseEnv = "HUFFZIP_VERBOSE"

var errNoCommand = errors.New("missing command: use 'compress' or 'decompress'")

type app struct {
	verbose bool
	log     *slog.Logger
}

// NewRootCommand returns the huffzip command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "huffzip",
		Short: "Huffman file compressor",
		Long:  "huffzip compresses and decompresses single files losslessly with Huffman coding.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if v, ok := os.LookupEnv(VerboseEnv); ok && !cmd.Flags().Changed("verbose") {
				verbose, err := strconv.ParseBool(v)
				if err != nil {
					return err
				}
				a.verbose = verbose
			}
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoCommand
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log statistics for each run")

	root.AddCommand(newCompressCommand(a))
	root.AddCommand(newDecompressCommand(a))
	root.AddCommand(newInspectCommand(a))
	root.AddCommand(newVersionCommand())
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
