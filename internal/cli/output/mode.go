// Package output renders CLI results for terminals, pipes and scripts.
//
// In auto mode a terminal gets styled text and anything else gets
// markdown, which reads well in logs and to agents alike.
package output

import (
	"fmt"
	"strings"
)

// OutputMode selects how results are rendered.
type OutputMode string //nolint:revive

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Modes lists every accepted mode.
var Modes = []OutputMode{ModeAuto, ModeText, ModeMarkdown, ModeJSON}

// Mode converts a config or flag value to an OutputMode.
// Empty and unknown values mean auto.
func Mode(s string) OutputMode {
	switch m := OutputMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeText, ModeMarkdown, ModeJSON:
		return m
	default:
		return ModeAuto
	}
}

// ParseMode is Mode but rejects unknown values.
func ParseMode(s string) (OutputMode, error) {
	if s == "" {
		return ModeAuto, nil
	}
	for _, m := range Modes {
		if OutputMode(strings.ToLower(s)) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown output mode %q (want auto, text, markdown or json)", s)
}

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, title string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + title
}
