package events

import "github.com/atomicstack/git-branch-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type ScreenTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Screen  = ScreenTracer{}
)

func (UITracer) MenuEnter(levelID, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"level":  levelID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

func (UITracer) Key(screen, key string, searching bool) {
	logging.Trace("ui.key", map[string]interface{}{"screen": screen, "key": key, "searching": searching})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Start(levelID string) {
	logging.Trace("filter.start", map[string]interface{}{"level": levelID})
}

func (FilterTracer) Stop(levelID, filter string) {
	logging.Trace("filter.stop", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (ScreenTracer) Push(screen string, depth int) {
	logging.Trace("screen.push", map[string]interface{}{"screen": screen, "depth": depth})
}

func (ScreenTracer) Pop(screen string, depth int) {
	logging.Trace("screen.pop", map[string]interface{}{"screen": screen, "depth": depth})
}

func (ScreenTracer) Reset(reason string) {
	logging.Trace("screen.reset", map[string]interface{}{"reason": reason})
}
