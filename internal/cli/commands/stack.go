package commands

import (
	"strings"

	"github.com/goamaan/site/internal/cli/output"
	"github.com/goamaan/site/pkg/core"
	"github.com/spf13/cobra"
)

// NewStackCommand creates the stack command group.
func NewStackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Inspect stack entries",
	}
	cmd.AddCommand(newStackListCommand())
	return cmd
}

func newStackListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stack entries in page order",
		Example: `  site stack list
  site stack list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStackList(cmd)
		},
	}
}

// StackEntryOutput is one entry in the JSON output of stack list.
type StackEntryOutput struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Tags        []string `json:"tags"`
}

func runStackList(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := cmdCtx.Store.ListStackEntries(cmd.Context())
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(stackOutput(entries))
	}

	r.Header(1, "Stack")
	if len(entries) == 0 {
		r.Muted("Nothing in the stack yet...")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Slug, e.Name, e.URL, strings.Join(e.Tags, ", ")})
	}
	r.Table([]string{"Slug", "Name", "URL", "Tags"}, rows)
	return nil
}

func stackOutput(entries []core.StackEntry) []StackEntryOutput {
	out := make([]StackEntryOutput, 0, len(entries))
	for _, e := range entries {
		tags := e.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, StackEntryOutput{
			Slug:        e.Slug,
			Name:        e.Name,
			Description: e.Description,
			URL:         e.URL,
			Tags:        tags,
		})
	}
	return out
}
