package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardkit/cardkit/internal/deck"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <deck.yaml>",
		Short: "Validate a deck without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], flags)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, path string, flags *rootFlags) error {
	log := newLogger(flags).WithComponent("validate")

	d, err := deck.ParseDeck(path)
	if err != nil {
		return newCommandError("validate deck", fmt.Sprintf("loading %q", path), err, "Fix the reported field and run validate again.")
	}

	log.WithFields(map[string]any{"deck": d.Name}).Debug("deck valid")

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d cards)\n", path, len(d.Cards))
	return nil
}
