package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const rootLong = `
Formats values with a {}-style replacement field language and writes them
through streams that bound the size of every raw write.

Examples:
  # Pad a date to ten columns
  textfmt format '{:*<12}' date:2012-12-9

  # Show what a format spec means
  textfmt explain '*^10.3' -o yaml

  # Plan the writes of 300 bytes to an int8 stream
  textfmt chunks --size 300 --type int8
`

// NewRootCommand builds the textfmt command tree on opts.
func NewRootCommand(opts *SharedOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "textfmt",
		Short:         "Format values and plan bounded stream writes",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if opts.IO.In != nil {
		root.SetIn(opts.IO.In)
	}
	root.SetOut(opts.IO.Out)
	root.SetErr(opts.IO.ErrOut)
	opts.AddFlags(root.PersistentFlags())

	format := NewFormatCommand(opts)
	register(root, &cobra.Command{
		Use:   "format FORMAT [ARG...]",
		Short: "Format arguments and print the result",
		Example: `  textfmt format 'Hello, {}!' world
  textfmt format --wide '{:^7}' héllo`,
		Args: cobra.MinimumNArgs(1),
	}, format, func(args []string) {
		format.Format, format.Args = args[0], args[1:]
	})

	explain := NewExplainCommand(opts)
	register(root, &cobra.Command{
		Use:   "explain SPEC",
		Short: "Describe the options of a format spec",
		Args:  cobra.ExactArgs(1),
	}, explain, func(args []string) {
		explain.Spec = args[0]
	})

	register(root, &cobra.Command{
		Use:   "chunks",
		Short: "Show the raw writes needed for a buffer",
		Args:  cobra.NoArgs,
	}, NewChunksCommand(opts), nil)

	return root
}

// Execute runs the command line args and returns the process exit code.
// Errors are reported on the error stream.
func Execute(ctx context.Context, streams IOStreams, args []string) int {
	opts := NewSharedOptions(streams)
	root := NewRootCommand(opts)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = opts.paint(color.FgRed).Fprintf(streams.ErrOut, "Error: %v\n", err)
		return 1
	}
	return 0
}
