package component

import "github.com/milk9111/bossfight/boss"

// BossEncounter owns the controller driving a boss entity.
type BossEncounter struct {
	Controller *boss.Controller
	Config     boss.Config
	Defeated   bool
	Actions    int
}

var BossEncounterComponent = NewComponent[BossEncounter]()
