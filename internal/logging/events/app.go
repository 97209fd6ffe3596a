package events

import "github.com/atomicstack/treemenu/internal/logging"

type AppTracer struct{}

type RenderTracer struct{}

var (
	App    = AppTracer{}
	Render = RenderTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (RenderTracer) Exported(treeID, target string, nodes int) {
	logging.Trace("render.export", map[string]interface{}{"tree": treeID, "target": target, "nodes": nodes})
}
