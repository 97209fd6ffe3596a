package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/treemenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	DefaultTitle        = "Breakfast Menu"
	DefaultInstructions = "Use up or down arrows to move through menu items, and Enter or Spacebar to toggle submenus open and closed."
)

const (
	envSource       = "TREEMENU_SOURCE"
	envFormat       = "TREEMENU_FORMAT"
	envTmux         = "TREEMENU_TMUX"
	envSocketPath   = "TREEMENU_SOCKET"
	envTitle        = "TREEMENU_TITLE"
	envInstructions = "TREEMENU_INSTRUCTIONS"
	envExpandAll    = "TREEMENU_EXPAND_ALL"
	envFollowFocus  = "TREEMENU_FOLLOW_FOCUS"
	envExport       = "TREEMENU_EXPORT"
	envWidth        = "TREEMENU_WIDTH"
	envHeight       = "TREEMENU_HEIGHT"
	envShowFooter   = "TREEMENU_FOOTER"
	envTrace        = "TREEMENU_TRACE"
	envLogFile      = "TREEMENU_LOG_FILE"
)

var (
	ErrNoSource       = errors.New("a source file or -tmux is required")
	ErrConflictSource = errors.New("-source and -tmux are mutually exclusive")
	ErrNegativeSize   = errors.New("sizes must be >= 0")
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. A single
// positional argument is accepted as the source path.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("treemenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	src := fs.String("source", envOrDefault(env, envSource, ""), "path to an HTML, YAML or JSON nested list (- for stdin)")
	format := fs.String("format", envOrDefault(env, envFormat, ""), "source format: html, yaml or json (default: from the file extension)")
	useTmux := fs.Bool("tmux", envOrBool(env, envTmux, false), "build the tree from the tmux server's sessions, windows and panes")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	title := fs.String("title", envOrDefault(env, envTitle, DefaultTitle), "accessible name of the tree")
	instructions := fs.String("instructions", envOrDefault(env, envInstructions, DefaultInstructions), "instructions exposed to assistive technology")
	expandAll := fs.Bool("expand-all", envOrBool(env, envExpandAll, true), "start with every submenu expanded")
	followFocus := fs.Bool("follow-focus", envOrBool(env, envFollowFocus, false), "select the focused item on every move")
	export := fs.String("export", envOrDefault(env, envExport, ""), "write the tree as HTML to this path (- for stdout) instead of running the UI")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint rows (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *src == "" && fs.NArg() > 0 {
		*src = fs.Arg(0)
	}

	cfg := Config{
		App: app.Config{
			Source:       *src,
			Format:       *format,
			Tmux:         *useTmux,
			SocketPath:   *socket,
			Title:        *title,
			Instructions: *instructions,
			ExpandAll:    *expandAll,
			FollowFocus:  *followFocus,
			Export:       *export,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":      *src,
			"format":      *format,
			"tmux":        strconv.FormatBool(*useTmux),
			"socket":      *socket,
			"title":       *title,
			"expandAll":   strconv.FormatBool(*expandAll),
			"followFocus": strconv.FormatBool(*followFocus),
			"export":      *export,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	a := cfg.App
	switch {
	case a.Source != "" && a.Tmux:
		return ErrConflictSource
	case a.Source == "" && !a.Tmux:
		return ErrNoSource
	case a.Width < 0:
		return fmt.Errorf("%w: width %d", ErrNegativeSize, a.Width)
	case a.Height < 0:
		return fmt.Errorf("%w: height %d", ErrNegativeSize, a.Height)
	}
	return nil
}
