package source

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"

	"github.com/atomicstack/treemenu/internal/logging/events"
	"github.com/atomicstack/treemenu/internal/tree"
)

const paneFormat = "#{session_name}\t#{window_index}\t#{window_name}\t#{pane_index}\t#{pane_title}\t#{pane_current_command}"

type tmuxClient interface {
	ListPanesFormat(target, filter, format string) ([]string, error)
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if strings.TrimSpace(socketPath) != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}

// ResolveSocketPath picks the tmux server socket: an explicit value first, then
// the socket of the enclosing tmux client, then the default per-user socket.
func ResolveSocketPath(flagValue string, getenv func(string) string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if tmuxEnv := getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolve tmux socket: %w", err)
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// Tmux lists every pane of the server as sessions > windows > panes.
func Tmux(socketPath string) ([]tree.Item, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		events.Source.Error(string(FormatTmux), socketPath, err)
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	lines, err := client.ListPanesFormat("", "", paneFormat)
	if err != nil {
		events.Source.Error(string(FormatTmux), socketPath, err)
		return nil, fmt.Errorf("list panes: %w", err)
	}
	items := groupPanes(lines)
	events.Source.Loaded(string(FormatTmux), socketPath, len(items))
	return items, nil
}

type paneLine struct {
	session     string
	windowIndex int
	windowName  string
	paneIndex   int
	title       string
	command     string
}

func parsePaneLine(line string) (paneLine, bool) {
	parts := strings.SplitN(strings.TrimSpace(line), "\t", 6)
	if len(parts) < 6 {
		return paneLine{}, false
	}
	windowIndex, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return paneLine{}, false
	}
	paneIndex, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return paneLine{}, false
	}
	return paneLine{
		session:     strings.TrimSpace(parts[0]),
		windowIndex: windowIndex,
		windowName:  strings.TrimSpace(parts[2]),
		paneIndex:   paneIndex,
		title:       strings.TrimSpace(parts[4]),
		command:     strings.TrimSpace(parts[5]),
	}, true
}

// groupPanes keeps tmux's listing order for sessions, windows and panes.
func groupPanes(lines []string) []tree.Item {
	var sessions []tree.Item
	sessionIdx := map[string]int{}
	windowIdx := map[string]int{}
	for _, raw := range lines {
		p, ok := parsePaneLine(raw)
		if !ok {
			continue
		}
		si, ok := sessionIdx[p.session]
		if !ok {
			si = len(sessions)
			sessionIdx[p.session] = si
			sessions = append(sessions, tree.Item{Label: p.session})
		}
		wkey := fmt.Sprintf("%s:%d", p.session, p.windowIndex)
		wi, ok := windowIdx[wkey]
		if !ok {
			wi = len(sessions[si].Children)
			windowIdx[wkey] = wi
			sessions[si].Children = append(sessions[si].Children, tree.Item{
				Label: fmt.Sprintf("%d: %s", p.windowIndex, p.windowName),
			})
		}
		window := &sessions[si].Children[wi]
		window.Children = append(window.Children, tree.Item{Label: paneLabel(p)})
	}
	return sessions
}

func paneLabel(p paneLine) string {
	label := fmt.Sprintf("%d: %s", p.paneIndex, p.command)
	if p.title != "" && p.title != p.command {
		label += " (" + p.title + ")"
	}
	return label
}
