package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/atomicstack/treemenu/internal/logging/events"
	"github.com/atomicstack/treemenu/internal/render"
	"github.com/atomicstack/treemenu/internal/source"
	"github.com/atomicstack/treemenu/internal/tree"
	"github.com/atomicstack/treemenu/internal/ui"
)

// ExportStdout sends the HTML export to standard output.
const ExportStdout = "-"

// Config describes user-provided application options.
type Config struct {
	Source       string
	Format       string
	Tmux         bool
	SocketPath   string
	Title        string
	Instructions string
	ExpandAll    bool
	FollowFocus  bool
	Export       string
	Width        int
	Height       int
	ShowFooter   bool
}

// Options returns the tree options described by cfg.
func (c Config) Options() tree.Options {
	return tree.Options{
		MenuTitle:             c.Title,
		Instructions:          c.Instructions,
		ExpandAll:             c.ExpandAll,
		SelectionFollowsFocus: c.FollowFocus,
	}
}

// instances numbers every tree built by this process.
var instances = tree.NewCounter()

// Load reads the configured source and builds a tree from it.
func Load(cfg Config) (*tree.Tree, error) {
	var (
		items []tree.Item
		err   error
	)
	if cfg.Tmux {
		socket, resolveErr := source.ResolveSocketPath(cfg.SocketPath, os.Getenv)
		if resolveErr != nil {
			return nil, resolveErr
		}
		items, err = source.Tmux(socket)
	} else {
		items, err = source.Open(cfg.Source, cfg.Format)
	}
	if err != nil {
		return nil, err
	}
	return tree.Build(instances, items, cfg.Options()), nil
}

// Run loads the tree and either exports it or runs the Bubble Tea program.
// Without a terminal on stdout the tree is exported to stdout.
func Run(cfg Config) error {
	t, err := Load(cfg)
	if err != nil {
		return err
	}
	export := cfg.Export
	if export == "" && !term.IsTerminal(int(os.Stdout.Fd())) {
		export = ExportStdout
	}
	if export != "" {
		return Export(t, export, os.Stdout)
	}
	model := ui.NewModel(t, ui.Options{Width: cfg.Width, Height: cfg.Height, ShowFooter: cfg.ShowFooter})
	program := tea.NewProgram(model)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Export writes t as HTML to target, a file path or ExportStdout.
func Export(t *tree.Tree, target string, stdout io.Writer) error {
	if target == ExportStdout {
		if err := render.HTML(stdout, t); err != nil {
			return err
		}
		events.Render.Exported(t.ID, target, t.Len())
		return nil
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := render.HTML(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	events.Render.Exported(t.ID, target, t.Len())
	return nil
}
