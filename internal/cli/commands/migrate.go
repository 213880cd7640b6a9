package commands

import (
	"strconv"

	"github.com/goamaan/site/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Create the database if needed and apply any pending schema migrations.

Every command that touches the database migrates first, so this is only
needed to prepare a database ahead of time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd)
		},
	}
}

// MigrateOutput is the JSON output for the migrate command.
type MigrateOutput struct {
	Database string `json:"database"`
	Version  int64  `json:"version"`
}

func runMigrate(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	version, err := cmdCtx.Store.GetMigrationVersion()
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	out := MigrateOutput{Database: cmdCtx.Cfg.Database, Version: version}
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}
	r.Success("Database is up to date")
	r.KeyValue("Database", out.Database)
	r.KeyValue("Version", strconv.FormatInt(out.Version, 10))
	return nil
}
