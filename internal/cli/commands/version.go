package commands

import (
	"runtime"

	"github.com/goamaan/site/internal/cli/output"
	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the site binary's version, commit and build date.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if info.GoVersion == "" {
				info.GoVersion = runtime.Version()
			}
			r := NewCommandContextWithoutStore(cmd).Renderer

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}
			r.Printf("site v%s\n", info.Version)
			r.Println("Personal site server built with Go, templ and datastar")
			r.Println("")
			r.KeyValue("commit", info.Commit)
			r.KeyValue("built", info.BuildDate)
			r.KeyValue("go", info.GoVersion)
			return nil
		},
	}
}
