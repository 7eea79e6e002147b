// Package cmd implements the garagectl commands.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrInvalid is returned when a payload fails validation. The failures have
// already been printed.
var ErrInvalid = errors.New("payload is invalid")

// NewRootCommand builds the garagectl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "garagectl",
		Short: "Validate garage-management payloads offline",
		Long: `garagectl runs the garage form validators against JSON payloads
without a server. Messages are rendered from the embedded catalogs.

Commands:
  forms     - list the record forms
  validate  - validate a JSON payload against a form`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFormsCommand(), newValidateCommand())
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
