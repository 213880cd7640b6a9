package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goamaan/site/internal/cli/output"
	clitest "github.com/goamaan/site/internal/cli/testutil"
)

func TestCalculateHealthScore(t *testing.T) {
	tests := []struct {
		name   string
		checks []HealthCheck
		want   int
	}{
		{name: "no checks returns 100", want: 100},
		{
			name:   "all passing returns 100",
			checks: []HealthCheck{{RuleID: "CF01", Status: statusPass}, {RuleID: "DB01", Status: statusPass}},
			want:   100,
		},
		{
			name:   "warnings reduce score",
			checks: []HealthCheck{{RuleID: "CT02", Status: statusWarn, IssueCount: 2}},
			want:   80,
		},
		{
			name:   "errors cost double",
			checks: []HealthCheck{{RuleID: "CF02", Status: statusError, IssueCount: 1}},
			want:   80,
		},
		{
			name: "clamped at zero",
			checks: []HealthCheck{
				{RuleID: "CT01", Status: statusError, IssueCount: 3},
				{RuleID: "CT02", Status: statusWarn, IssueCount: 5},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateHealthScore(tt.checks))
		})
	}
}

func TestGetRecommendation(t *testing.T) {
	for _, id := range []string{"CF01", "CF02", "CF03", "DB01", "DB02", "CT01", "CT02", "AC01"} {
		assert.NotEmpty(t, getRecommendation(id), "expected recommendation for %s", id)
	}
	assert.Empty(t, getRecommendation("UNKNOWN"))
}

func TestGenerateRecommendations_Dedup(t *testing.T) {
	recs := generateRecommendations([]HealthCheck{
		{RuleID: "DB02", Status: statusWarn, IssueCount: 1},
		{RuleID: "CT02", Status: statusWarn, IssueCount: 2},
		{RuleID: "AC01", Status: statusPass},
	})
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "site seed")
}

func findCheck(t *testing.T, out *DoctorOutput, id string) HealthCheck {
	t.Helper()
	for _, c := range out.HealthChecks {
		if c.RuleID == id {
			return c
		}
	}
	t.Fatalf("check %s not found", id)
	return HealthCheck{}
}

func TestBuildDoctorOutput(t *testing.T) {
	cfg := loadProject(t)

	cmdCtx, cleanup, err := NewCommandContext(NewDoctorCommand())
	require.NoError(t, err)
	defer cleanup()

	out, err := buildDoctorOutput(t.Context(), cfg, "site.yaml", cmdCtx.Store)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Summary.SchemaVersion)
	assert.Equal(t, 2, out.Summary.ContentStack)
	assert.Equal(t, statusPass, findCheck(t, out, "CF01").Status)
	assert.Equal(t, statusPass, findCheck(t, out, "CF02").Status)
	assert.Equal(t, statusWarn, findCheck(t, out, "CF03").Status)
	assert.Equal(t, statusWarn, findCheck(t, out, "DB02").Status)
	assert.Equal(t, statusWarn, findCheck(t, out, "AC01").Status)
	seeded := findCheck(t, out, "CT02")
	assert.Equal(t, statusWarn, seeded.Status)
	assert.Equal(t, 2, seeded.IssueCount)
	assert.Equal(t, 2, out.Summary.UnseededStack)

	// groups are sorted for rendering
	for i := 1; i < len(out.HealthChecks); i++ {
		assert.LessOrEqual(t, out.HealthChecks[i-1].Group, out.HealthChecks[i].Group)
	}

	_, err = execute(t, NewSeedCommand())
	require.NoError(t, err)
	cfg.Server.Dev = true
	cfg.Server.SessionSecret = ""

	out, err = buildDoctorOutput(t.Context(), cfg, "", cmdCtx.Store)
	require.NoError(t, err)
	assert.Equal(t, statusPass, findCheck(t, out, "CT02").Status)
	assert.Zero(t, out.Summary.UnseededStack)
	assert.Equal(t, statusPass, findCheck(t, out, "DB02").Status)
	assert.Equal(t, statusWarn, findCheck(t, out, "CF01").Status)
	assert.Equal(t, statusWarn, findCheck(t, out, "CF02").Status)
	assert.Equal(t, statusPass, findCheck(t, out, "CF03").Status, "dev mode may use plain HTTP")
}

func TestRenderDoctor(t *testing.T) {
	out := &DoctorOutput{
		Summary: SiteSummary{Database: "site.db", SchemaVersion: 1},
		HealthChecks: []HealthCheck{
			{RuleID: "AC01", Name: "admin-account", Group: "accounts", Status: statusWarn, IssueCount: 1, Details: []string{"no admin"}},
			{RuleID: "DB01", Name: "schema", Group: "database", Status: statusPass},
		},
		Score:           90,
		Recommendations: []string{getRecommendation("AC01")},
		IssueCount:      1,
	}

	md := clitest.NewTestRendererMarkdown()
	require.NoError(t, renderDoctorMarkdown(md.Renderer, out))
	clitest.AssertValidMarkdown(t, md.Output())
	clitest.AssertOutputMode(t, md, output.ModeMarkdown)
	assert.Contains(t, md.Output(), "### Accounts")
	assert.Contains(t, md.Output(), "- **[WARN]** AC01: admin-account")
	assert.Contains(t, md.Output(), "**90/100**")

	text := clitest.NewTestRenderer(output.ModeText, false)
	require.NoError(t, renderDoctorText(text.Renderer, out))
	assert.Contains(t, text.Output(), "Database")
	assert.Contains(t, text.Output(), "! AC01: admin-account")
	assert.Contains(t, text.Output(), "Health Score: 90/100")
	clitest.AssertNoANSI(t, text.Output())
}

func TestDoctorCommand_JSON(t *testing.T) {
	loadProject(t)

	out, err := execute(t, NewDoctorCommand(), "--format", "json")
	require.NoError(t, err)
	got := decode[DoctorOutput](t, out)
	assert.NotEmpty(t, got.HealthChecks)
	assert.Positive(t, got.IssueCount)
}
