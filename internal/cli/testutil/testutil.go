// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/goamaan/site/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionSecret is long enough to pass serve validation.
const TestSessionSecret = "test-session-secret-0123456789abcdef"

// TestContent is the content file SetupTestProject writes.
const TestContent = `stack:
  - slug: go
    name: Go
    description: The language this site is written in
    url: https://go.dev
    tags: [language, backend]
  - slug: sqlite
    name: SQLite
comments:
  - entity_type: stack
    entity_slug: go
    author: Ada
    text: Great choice
  - entity_type: post
    entity_id: hello-world
    author: Grace
    text: First!
`

// SetupTestProject creates a temporary site with a config file, a
// content file and a database path inside it. It returns the project
// directory and the config file path.
func SetupTestProject(t *testing.T) (dir, configPath string) {
	t.Helper()

	dir = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content", "site.yaml"), []byte(TestContent), 0o600))

	configPath = filepath.Join(dir, "site.yaml")
	cfg := "title: Test Site\nauthor: Tester\ndatabase: .site/site.db\ncontent_file: content/site.yaml\n" +
		"server:\n  session_secret: " + TestSessionSecret + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))

	return dir, configPath
}

// TestRenderer is a Renderer whose stdout and stderr land in buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer builds a TestRenderer. isTTY stands in for terminal
// detection, which never fires on a buffer.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	tr := &TestRenderer{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}
	tr.Renderer = output.NewRendererWithTTY(tr.Out, tr.ErrOut, isTTY, mode)
	return tr
}

// NewTestRendererMarkdown is NewTestRenderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// Output returns what was written to stdout.
func (tr *TestRenderer) Output() string { return tr.Out.String() }

// ErrorOutput returns what was written to stderr.
func (tr *TestRenderer) ErrorOutput() string { return tr.ErrOut.String() }

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI fails when s carries terminal escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	assert.False(t, ansiPattern.MatchString(s), "unexpected ANSI escape codes in %q", s)
}

// AssertValidMarkdown checks headers have titles and every row of a
// markdown table has as many cells as its header.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	cells := -1
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			assert.NotEmpty(t, strings.TrimLeft(trimmed, "# "), "empty header at line %d", i+1)
		}
		if !strings.HasPrefix(trimmed, "|") {
			cells = -1
			continue
		}
		n := strings.Count(trimmed, "|") - strings.Count(trimmed, `\|`)
		if cells < 0 {
			cells = n
			continue
		}
		assert.Equal(t, cells, n, "table row at line %d: %q", i+1, line)
	}
}

// AssertOutputMode checks tr's output is plausible for mode. Only text
// mode on a terminal may carry escape codes.
func AssertOutputMode(t *testing.T, tr *TestRenderer, mode output.OutputMode) {
	t.Helper()

	all := tr.Output() + tr.ErrorOutput()
	switch mode {
	case output.ModeText:
		if !tr.IsTTY() {
			AssertNoANSI(t, all)
		}
	case output.ModeJSON:
		AssertNoANSI(t, all)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(tr.Output()), "{") ||
			strings.HasPrefix(strings.TrimSpace(tr.Output()), "["), "JSON output expected, got %q", tr.Output())
	default:
		AssertNoANSI(t, all)
	}
}
