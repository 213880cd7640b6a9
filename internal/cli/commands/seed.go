package commands

import (
	"fmt"

	"github.com/goamaan/site/internal/cli/output"
	"github.com/goamaan/site/internal/state"
	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [content-file]",
		Short: "Load stack entries and comments from the content file",
		Long: `Load the YAML content file into the database.

Seeding is idempotent: stack entries are upserted by slug, comment authors
are created once by name, and a comment already present on its thread is
skipped. The file is validated before anything is written.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Seed from the configured content file
  site seed

  # Seed from another file and report as JSON
  site seed ./drafts/site.yaml --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args)
		},
	}

	return cmd
}

// SeedOutput is the JSON output for the seed command.
type SeedOutput struct {
	File         string `json:"file"`
	StackEntries int    `json:"stack_entries"`
	Comments     int    `json:"comments"`
	Authors      int    `json:"authors"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	path := cmdCtx.Cfg.ContentFile
	if len(args) == 1 {
		path = args[0]
	}

	content, err := state.LoadContent(path)
	if err != nil {
		return err
	}
	res, err := state.Seed(cmd.Context(), cmdCtx.Store, content, cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}

	out := SeedOutput{
		File:         path,
		StackEntries: res.StackEntries,
		Comments:     res.Comments,
		Authors:      res.Authors,
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	default:
		r.Header(1, "Seed")
		r.Success(fmt.Sprintf("Loaded %s", out.File))
		r.KeyValue("Stack", fmt.Sprintf("%d entries", out.StackEntries))
		r.KeyValue("Comments", fmt.Sprintf("%d new", out.Comments))
		r.KeyValue("Authors", fmt.Sprintf("%d new", out.Authors))
		return nil
	}
}
