package commands

import (
	"fmt"

	"github.com/goamaan/site/internal/cli/output"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/pkg/core"
	"github.com/spf13/cobra"
)

// NewCommentsCommand creates the comments command group.
func NewCommentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Inspect comment threads",
	}
	cmd.AddCommand(newCommentsListCommand())
	return cmd
}

func newCommentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <type> <id>",
		Short: "List the comments on one thread, oldest first",
		Example: `  site comments list post hello-world
  site comments list stack 0b7c9e2e-... --output json`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			types := core.EntityTypes()
			out := make([]string, len(types))
			for i, t := range types {
				out[i] = t.String()
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommentsList(cmd, args[0], args[1])
		},
	}
}

func runCommentsList(cmd *cobra.Command, rawType, id string) error {
	entityType, err := core.ParseEntityType(rawType)
	if err != nil {
		return err
	}
	key := core.EntityKey{ID: id, Type: entityType}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	comments, err := cmdCtx.Store.ListCommentsForEntity(cmd.Context(), key)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		if comments == nil {
			comments = []core.Comment{}
		}
		return r.JSON(comments)
	}

	r.Header(1, fmt.Sprintf("Comments on %s (%d)", key, len(comments)))
	if len(comments) == 0 {
		r.Muted("No comments yet...")
		return nil
	}

	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{c.ID, c.Author.Name, common.FormatDate(c.CreatedAt), c.Text})
	}
	r.Table([]string{"ID", "Author", "Date", "Text"}, rows)
	return nil
}
