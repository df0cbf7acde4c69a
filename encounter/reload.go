package encounter

import (
	"path/filepath"

	"github.com/milk9111/bossfight/prefabs"
)

// ApplyChanges drains pending file changes without blocking and reloads the
// encounter's prefab once if any arrived. Call it from the update loop so the
// world is only touched from one goroutine. It reports whether a reload
// happened; a failed reload is logged and the fight keeps running.
func (e *Encounter) ApplyChanges(changes <-chan prefabs.Change) bool {
	var last *prefabs.Change
	for {
		select {
		case c, ok := <-changes:
			if !ok {
				return e.reloadFrom(last)
			}
			last = &c
		default:
			return e.reloadFrom(last)
		}
	}
}

func (e *Encounter) reloadFrom(change *prefabs.Change) bool {
	if change == nil {
		return false
	}
	name := e.prefabName()
	spec, err := prefabs.LoadBossSpec(name)
	if err != nil {
		e.log.Error().Err(err).Str("path", change.Path).Msg("hot reload: load failed")
		return false
	}
	if err := e.Reload(spec); err != nil {
		e.log.Error().Err(err).Str("path", change.Path).Msg("hot reload: prefab rejected")
		return false
	}
	e.log.Info().Str("path", filepath.Base(change.Path)).Str("boss", spec.Name).Msg("hot reload: encounter restarted")
	return true
}

func (e *Encounter) prefabName() string {
	if e.source != "" {
		return e.source
	}
	return "boss.yaml"
}
