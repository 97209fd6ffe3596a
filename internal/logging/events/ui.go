package events

import "github.com/atomicstack/treemenu/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

var (
	UI     = UITracer{}
	Search = SearchTracer{}
)

func (UITracer) Key(key, event string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "event": event})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (SearchTracer) Open() {
	logging.Trace("search.open", nil)
}

func (SearchTracer) Jump(query, nodeID string, steps int) {
	logging.Trace("search.jump", map[string]interface{}{"query": query, "node": nodeID, "steps": steps})
}

func (SearchTracer) Miss(query string) {
	logging.Trace("search.miss", map[string]interface{}{"query": query})
}
