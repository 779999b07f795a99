package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardkit/cardkit/internal/deck"
	kiterrors "github.com/cardkit/cardkit/pkg/errors"
)

type renderOptions struct {
	output string
	page   bool
	group  bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <deck.yaml>",
		Short: "Render a deck to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, flags)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the fragment in a full HTML page")
	cmd.Flags().BoolVar(&opts.group, "group", false, "Wrap the cards in a card-group container")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions, flags *rootFlags) error {
	log := newLogger(flags).WithComponent("render")

	d, err := deck.ParseDeck(path)
	if err != nil {
		return newCommandError("render deck", fmt.Sprintf("loading %q", path), err, "Run 'cardkit validate' for detailed diagnostics.")
	}

	if opts.group {
		d.Settings.Group = true
	}

	var out string
	if opts.page {
		out = deck.RenderPage(d)
	} else {
		out = deck.RenderDeck(d) + "\n"
	}

	log.WithFields(map[string]any{"deck": d.Name, "cards": len(d.Cards), "page": opts.page}).Debug("deck rendered")

	if opts.output == "" || opts.output == "-" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return kiterrors.NewRenderError(opts.output, err)
	}

	log.WithFields(map[string]any{"deck": d.Name, "output": opts.output}).Info("deck written")
	return nil
}
