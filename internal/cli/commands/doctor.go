package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goamaan/site/internal/cli/config"
	"github.com/goamaan/site/internal/cli/output"
	"github.com/goamaan/site/internal/state"
	"github.com/goamaan/site/pkg/core"
	"github.com/spf13/cobra"
)

// Health check statuses.
const (
	statusPass  = "pass"
	statusWarn  = "warn"
	statusError = "error"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the site's configuration, database and content",
		Long: `Check that the site is ready to serve.

The report covers:
- Configuration (config file, session secret, cookie security)
- Database (schema version, stack entries)
- Content (the content file parses and has been seeded)
- Accounts (someone can use the admin actions)

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run the checks
  site doctor

  # Output as JSON
  site doctor --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Summary         SiteSummary   `json:"summary"`
	HealthChecks    []HealthCheck `json:"health_checks"`
	Score           int           `json:"score"`
	Recommendations []string      `json:"recommendations"`
	IssueCount      int           `json:"issue_count"`
}

// SiteSummary contains site-level statistics.
type SiteSummary struct {
	ConfigFile      string `json:"config_file,omitempty"`
	Database        string `json:"database"`
	SchemaVersion   int64  `json:"schema_version"`
	StackEntries    int    `json:"stack_entries"`
	Admins          int    `json:"admins"`
	ContentFile     string `json:"content_file"`
	ContentStack    int    `json:"content_stack"`
	ContentComments int    `json:"content_comments"`
	UnseededStack   int    `json:"unseeded_stack_entries"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	RuleID     string   `json:"rule_id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"` // "pass", "warn", "error"
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	doctorOutput, err := buildDoctorOutput(cmd.Context(), cmdCtx.Cfg, config.GetConfigFileUsed(), cmdCtx.Store)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(doctorOutput)
	case output.ModeMarkdown:
		return renderDoctorMarkdown(r, doctorOutput)
	default:
		return renderDoctorText(r, doctorOutput)
	}
}

func buildDoctorOutput(ctx context.Context, cfg *config.Config, configFile string, store *state.SQLiteStore) (*DoctorOutput, error) {
	summary := SiteSummary{
		ConfigFile:  configFile,
		Database:    cfg.Database,
		ContentFile: cfg.ContentFile,
	}

	version, err := store.GetMigrationVersion()
	if err != nil {
		return nil, err
	}
	summary.SchemaVersion = version

	entries, err := store.ListStackEntries(ctx)
	if err != nil {
		return nil, err
	}
	summary.StackEntries = len(entries)

	if err := store.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE is_admin = 1").Scan(&summary.Admins); err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}

	checks := configChecks(cfg, configFile)
	checks = append(checks, databaseChecks(summary)...)
	checks = append(checks, contentChecks(ctx, cfg.ContentFile, store, &summary)...)
	checks = append(checks, accountChecks(summary)...)

	sort.SliceStable(checks, func(i, j int) bool {
		if checks[i].Group != checks[j].Group {
			return checks[i].Group < checks[j].Group
		}
		return checks[i].RuleID < checks[j].RuleID
	})

	issues := 0
	for _, c := range checks {
		issues += c.IssueCount
	}

	return &DoctorOutput{
		Summary:         summary,
		HealthChecks:    checks,
		Score:           calculateHealthScore(checks),
		Recommendations: generateRecommendations(checks),
		IssueCount:      issues,
	}, nil
}

func check(id, name, group string, details ...string) HealthCheck {
	return HealthCheck{RuleID: id, Name: name, Group: group, Status: statusPass, Details: details}
}

func (c HealthCheck) fail(status string, details ...string) HealthCheck {
	c.Status = status
	c.IssueCount = len(details)
	c.Details = details
	return c
}

func configChecks(cfg *config.Config, configFile string) []HealthCheck {
	file := check("CF01", "config-file", "configuration")
	if configFile == "" {
		file = file.fail(statusWarn, "no site.yaml found; running on defaults")
	}

	secret := check("CF02", "session-secret", "configuration")
	switch {
	case cfg.Server.Dev && cfg.Server.SessionSecret == "":
		secret = secret.fail(statusWarn, "no session secret; dev mode signs cookies with a built-in secret")
	case !cfg.Server.Dev && len(cfg.Server.SessionSecret) < config.MinSessionSecretLen:
		secret = secret.fail(statusError, fmt.Sprintf("session secret is shorter than %d bytes", config.MinSessionSecretLen))
	}

	cookies := check("CF03", "secure-cookies", "configuration")
	if !cfg.Server.Dev && !cfg.Server.SecureCookies {
		cookies = cookies.fail(statusWarn, "session cookies are sent over plain HTTP")
	}

	return []HealthCheck{file, secret, cookies}
}

func databaseChecks(s SiteSummary) []HealthCheck {
	schema := check("DB01", "schema", "database", fmt.Sprintf("schema version %d", s.SchemaVersion))
	if s.SchemaVersion < 1 {
		schema = schema.fail(statusError, "no migrations applied")
	}

	stack := check("DB02", "stack-entries", "database", fmt.Sprintf("%d stack entries", s.StackEntries))
	if s.StackEntries == 0 {
		stack = stack.fail(statusWarn, "the stack page will show its empty state")
	}

	return []HealthCheck{schema, stack}
}

func contentChecks(ctx context.Context, path string, store core.Store, s *SiteSummary) []HealthCheck {
	parse := check("CT01", "content-file", "content")
	synced := check("CT02", "content-seeded", "content")

	if _, err := os.Stat(path); err != nil {
		return []HealthCheck{parse.fail(statusWarn, "content file not found: "+path), synced}
	}

	content, err := state.LoadContent(path)
	if err != nil {
		return []HealthCheck{parse.fail(statusError, err.Error()), synced}
	}
	s.ContentStack = len(content.Stack)
	s.ContentComments = len(content.Comments)

	var missing []string
	for _, e := range content.Stack {
		if _, err := store.GetStackEntry(ctx, e.Slug); errors.Is(err, core.ErrNotFound) {
			missing = append(missing, e.Slug+" is not in the database")
		}
	}
	s.UnseededStack = len(missing)
	if len(missing) > 0 {
		synced = synced.fail(statusWarn, missing...)
	}

	return []HealthCheck{parse, synced}
}

func accountChecks(s SiteSummary) []HealthCheck {
	admin := check("AC01", "admin-account", "accounts")
	if s.Admins == 0 {
		admin = admin.fail(statusWarn, "no admin account; admin actions are unavailable")
	}
	return []HealthCheck{admin}
}

// calculateHealthScore computes a health score from 0-100.
// Errors cost twice as much as warnings.
func calculateHealthScore(checks []HealthCheck) int {
	score := 100
	for _, c := range checks {
		switch c.Status {
		case statusError:
			score -= 20 * c.IssueCount
		case statusWarn:
			score -= 10 * c.IssueCount
		}
	}
	return max(score, 0)
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	seen := make(map[string]bool)

	for _, c := range checks {
		if c.IssueCount == 0 {
			continue
		}
		rec := getRecommendation(c.RuleID)
		if rec != "" && !seen[rec] {
			recommendations = append(recommendations, rec)
			seen[rec] = true
		}
	}
	return recommendations
}

// getRecommendation returns a recommendation for a specific check.
func getRecommendation(ruleID string) string {
	switch ruleID {
	case "CF01":
		return "Create a site.yaml next to the binary or pass --config"
	case "CF02":
		return "Set server.session_secret (or SITE_SERVER__SESSION_SECRET) to 32+ random bytes"
	case "CF03":
		return "Serve over HTTPS and set server.secure_cookies: true"
	case "DB01":
		return "Run `site migrate`"
	case "DB02", "CT02":
		return "Run `site seed` to load the content file"
	case "CT01":
		return "Fix the content file so it parses and validates"
	case "AC01":
		return "Create an admin with `site user add <name> --admin`"
	default:
		return ""
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Site Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	r.Println(styles.Header2.Render("Summary"))
	r.Printf("   Database: %s (schema v%d)\n", out.Summary.Database, out.Summary.SchemaVersion)
	r.Printf("   Stack: %d entries | Admins: %d\n", out.Summary.StackEntries, out.Summary.Admins)
	r.Printf("   Content: %s (%d stack, %d comments)\n", out.Summary.ContentFile, out.Summary.ContentStack, out.Summary.ContentComments)
	r.Println("")

	r.Println(styles.Header2.Render("Health Checks"))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, c := range out.HealthChecks {
		if c.Group != currentGroup {
			currentGroup = c.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.StatusSuccess.String()
		switch c.Status {
		case statusWarn:
			icon = styles.Warning.Render("!")
		case statusError:
			icon = styles.StatusFailed.String()
		}
		r.Println(fmt.Sprintf("   %s %s: %s", icon, c.RuleID, c.Name))

		for _, d := range c.Details {
			r.Println(styles.Muted.Render("       - " + d))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Header2.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# Site Health Report")
	r.Println("")

	r.Println("## Summary")
	r.Println("")
	r.Printf("- **Database**: %s (schema v%d)\n", out.Summary.Database, out.Summary.SchemaVersion)
	r.Printf("- **Stack entries**: %d\n", out.Summary.StackEntries)
	r.Printf("- **Admins**: %d\n", out.Summary.Admins)
	r.Printf("- **Content file**: %s\n", out.Summary.ContentFile)
	r.Println("")

	r.Println("## Health Checks")
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, c := range out.HealthChecks {
		if c.Group != currentGroup {
			currentGroup = c.Group
			r.Println("### " + titleCaser.String(currentGroup))
			r.Println("")
		}

		r.Printf("- **[%s]** %s: %s\n", strings.ToUpper(c.Status), c.RuleID, c.Name)
		for _, d := range c.Details {
			r.Printf("  - %s\n", d)
		}
	}
	r.Println("")

	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
