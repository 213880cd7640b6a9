// Package config loads the site configuration.
//
// Values are layered lowest to highest: built-in defaults, site.yaml,
// SITE_ environment variables, then flags the user actually set.
package config

import (
	"strconv"
	"time"
)

// Config holds all configuration for the site binary.
type Config struct {
	Title        string `koanf:"title"`
	Author       string `koanf:"author"`
	Database     string `koanf:"database"`
	ContentFile  string `koanf:"content_file"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`

	Server ServerConfig `koanf:"server"`
	UI     UIConfig     `koanf:"ui"`
	Log    LogConfig    `koanf:"log"`

	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port              int           `koanf:"port"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	QueryTimeout      time.Duration `koanf:"query_timeout"`
	SessionSecret     string        `koanf:"session_secret"`
	SecureCookies     bool          `koanf:"secure_cookies"`
	Dev               bool          `koanf:"dev"`
	Watch             bool          `koanf:"watch"`
}

// UIConfig configures page rendering.
type UIConfig struct {
	Theme string `koanf:"theme"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default configuration values.
const (
	DefaultTitle             = "Amaan Gokak"
	DefaultAuthor            = "Amaan Gokak"
	DefaultDatabase          = ".site/site.db"
	DefaultContentFile       = "content/site.yaml"
	DefaultOutput            = "auto" // TTY=text, non-TTY=markdown
	DefaultPort              = 8080
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultQueryTimeout      = 5 * time.Second
	DefaultTheme             = "system"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"

	// MinSessionSecretLen is the shortest secret accepted outside dev mode.
	MinSessionSecretLen = 32
)

// Themes lists the accepted ui.theme values.
var Themes = []string{"light", "dark", "system"}

// Addr returns the listen address for the configured port.
func (c *ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
