package events

import "github.com/atomicstack/git-branch-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Repository(root, head string) {
	logging.Trace("app.repository", map[string]interface{}{"root": root, "head": head})
}

func (AppTracer) Exit(confirmed bool, err error) {
	payload := map[string]interface{}{"confirmed": confirmed}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
