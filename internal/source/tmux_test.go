package source

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/treemenu/internal/tree"
)

type fakeTmux struct {
	lines  []string
	err    error
	format string
	closed bool
}

func (f *fakeTmux) ListPanesFormat(target, filter, format string) ([]string, error) {
	f.format = format
	return f.lines, f.err
}

func (f *fakeTmux) Close() error {
	f.closed = true
	return nil
}

func withFakeTmux(t *testing.T, fake *fakeTmux) {
	t.Helper()
	orig := newTmux
	newTmux = func(string) (tmuxClient, error) { return fake, nil }
	t.Cleanup(func() { newTmux = orig })
}

func TestTmuxGroupsPanesBySessionAndWindow(t *testing.T) {
	fake := &fakeTmux{lines: []string{
		"work\t1\teditor\t0\tvim\tvim",
		"work\t1\teditor\t1\thost\tzsh",
		"work\t2\tlogs\t0\ttail\ttail",
		"garbage line",
		"play\t0\tmusic\t0\t\tcmus",
	}}
	withFakeTmux(t, fake)

	items, err := Tmux("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tree.Item{
		{Label: "work", Children: []tree.Item{
			{Label: "1: editor", Children: []tree.Item{{Label: "0: vim"}, {Label: "1: zsh (host)"}}},
			{Label: "2: logs", Children: []tree.Item{{Label: "0: tail"}}},
		}},
		{Label: "play", Children: []tree.Item{
			{Label: "0: music", Children: []tree.Item{{Label: "0: cmus"}}},
		}},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("expected %#v, got %#v", want, items)
	}
	if fake.format != paneFormat {
		t.Fatalf("expected pane format query, got %q", fake.format)
	}
	if !fake.closed {
		t.Fatalf("expected client closed")
	}
}

func TestTmuxPropagatesListErrors(t *testing.T) {
	withFakeTmux(t, &fakeTmux{err: errors.New("no server")})
	if _, err := Tmux(""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestResolveSocketPath(t *testing.T) {
	env := map[string]string{"TMUX": "/tmp/tmux-1000/work,1234,0"}
	getenv := func(k string) string { return env[k] }
	if got, _ := ResolveSocketPath("/explicit", getenv); got != "/explicit" {
		t.Fatalf("expected explicit socket, got %s", got)
	}
	if got, _ := ResolveSocketPath("", getenv); got != "/tmp/tmux-1000/work" {
		t.Fatalf("expected socket from TMUX, got %s", got)
	}
	env = map[string]string{"TMUX_TMPDIR": "/var/run"}
	got, err := ResolveSocketPath("", getenv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "/var/run/tmux-") || !strings.HasSuffix(got, "/default") {
		t.Fatalf("expected default socket under TMUX_TMPDIR, got %s", got)
	}
}
