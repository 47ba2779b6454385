// Package cli implements the textfmt command line: formatting from the
// shell, explaining format specs and planning bounded writes.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command is a subcommand with a three-phase lifecycle. Complete derives
// fields from flags and arguments, Validate checks them and Run does the
// work. Flags are registered through AddFlags so commands can be tested
// without cobra.
type Command interface {
	Complete() error
	Validate() error
	Run(ctx context.Context) error
	AddFlags(fs *pflag.FlagSet)
}

// IOStreams holds the standard streams a command reads from and writes to.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// execute runs the lifecycle of command.
func execute(ctx context.Context, command Command) error {
	if err := command.Complete(); err != nil {
		return fmt.Errorf("completing command: %w", err)
	}
	if err := command.Validate(); err != nil {
		return fmt.Errorf("validating command: %w", err)
	}
	if err := command.Run(ctx); err != nil {
		return fmt.Errorf("running command: %w", err)
	}
	return nil
}

// register attaches command to root under cmd. bind receives the
// positional arguments before the lifecycle starts.
func register(root, cmd *cobra.Command, command Command, bind func(args []string)) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if bind != nil {
			bind(args)
		}
		return execute(c.Context(), command)
	}
	command.AddFlags(cmd.Flags())
	root.AddCommand(cmd)
}
