package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cardkit/cardkit/internal/deck"
	"github.com/cardkit/cardkit/internal/preview"
)

const staticPreviewWidth = 80

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <deck.yaml>",
		Short: "Preview a deck in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], flags)
		},
	}

	return cmd
}

func runPreview(cmd *cobra.Command, path string, flags *rootFlags) error {
	log := newLogger(flags).WithComponent("preview")

	d, err := deck.ParseDeck(path)
	if err != nil {
		return newCommandError("preview deck", fmt.Sprintf("loading %q", path), err, "Run 'cardkit validate' for detailed diagnostics.")
	}

	// Without a terminal there is no interactive session to run; emit the
	// static rendition instead.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(cmd.OutOrStdout(), preview.DeckView(d, staticPreviewWidth))
		return nil
	}

	log.WithFields(map[string]any{"deck": d.Name, "cards": len(d.Cards)}).Debug("starting interactive preview")

	program := tea.NewProgram(preview.NewModel(d), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return newCommandError("preview deck", "running interactive preview", err, "Try 'cardkit render' for non-interactive output.")
	}

	return nil
}
