package events

import "github.com/atomicstack/treemenu/internal/logging"

type TreeTracer struct{}

type NavTracer struct{}

type SourceTracer struct{}

var (
	Tree   = TreeTracer{}
	Nav    = NavTracer{}
	Source = SourceTracer{}
)

func (TreeTracer) Built(treeID string, roots, nodes int, expandAll bool) {
	logging.Trace("tree.built", map[string]interface{}{
		"tree":      treeID,
		"roots":     roots,
		"nodes":     nodes,
		"expandAll": expandAll,
	})
}

func (NavTracer) Transition(treeID, transition, focused, selected string) {
	logging.Trace("nav.transition", map[string]interface{}{
		"tree":       treeID,
		"transition": transition,
		"focused":    focused,
		"selected":   selected,
	})
}

func (NavTracer) Toggle(treeID, nodeID string, expanded bool) {
	logging.Trace("nav.toggle", map[string]interface{}{"tree": treeID, "node": nodeID, "expanded": expanded})
}

func (SourceTracer) Loaded(kind, origin string, roots int) {
	logging.Trace("source.loaded", map[string]interface{}{"kind": kind, "origin": origin, "roots": roots})
}

func (SourceTracer) Error(kind, origin string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"kind": kind, "origin": origin, "error": err.Error()})
}
