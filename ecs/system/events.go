package system

import (
	"fmt"

	"github.com/milk9111/bossfight/ecs"
)

// World event types pushed by the encounter systems.
const (
	EventBossWoke       = "boss_woke"
	EventBossAction     = "boss_action"
	EventBossDefeated   = "boss_defeated"
	EventEnemySpawned   = "enemy_spawned"
	EventEnemyExploded  = "enemy_exploded"
	EventRocketFired    = "rocket_fired"
	EventRocketExploded = "rocket_exploded"
	EventPlayerDamaged  = "player_damaged"
	EventScriptFailed   = "script_failed"
	EventMusicChanged   = "music_changed"
)

// ActionEvent is the payload of EventBossAction.
type ActionEvent struct {
	Drawn    string
	Executed string
	Position string
}

func pushEvent(w *ecs.World, typ string, data any) {
	if w == nil {
		return
	}
	w.Events().Push(ecs.Event{Type: typ, Data: data})
}

// FormatEvent renders an event as a single log line.
func FormatEvent(evt ecs.Event) string {
	switch data := evt.Data.(type) {
	case ActionEvent:
		if data.Drawn != data.Executed {
			return fmt.Sprintf("%s %s (drew %s) at %s", evt.Type, data.Executed, data.Drawn, data.Position)
		}
		return fmt.Sprintf("%s %s at %s", evt.Type, data.Executed, data.Position)
	case nil:
		return evt.Type
	case fmt.Stringer:
		return fmt.Sprintf("%s %s", evt.Type, data.String())
	default:
		return fmt.Sprintf("%s %v", evt.Type, data)
	}
}

// EventRecorder drains world events at the end of a frame and hands them to
// a callback. It should be the last system in the schedule.
type EventRecorder struct {
	record func(ecs.Event)
}

func NewEventRecorder(record func(ecs.Event)) *EventRecorder {
	return &EventRecorder{record: record}
}

func (r *EventRecorder) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		if r.record != nil {
			r.record(evt)
		}
	}
}
