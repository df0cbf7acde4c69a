package boss

import (
	"github.com/jakecoffman/cp"
)

type spawnCall struct {
	ID     EntityID
	Kind   EntityKind
	Pos    cp.Vector
	Params SpawnParams
}

type volumeCall struct {
	Cue    string
	Volume float64
}

// recordingSink captures every request in order.
type recordingSink struct {
	log       []string
	cues      []string
	triggers  []string
	music     []string
	spawns    []spawnCall
	destroyed []EntityID
	volumes   []volumeCall
	health    []float64
	defeated  int
	nextID    EntityID
}

func (s *recordingSink) PlayAudioCue(cue string) {
	s.log = append(s.log, "cue:"+cue)
	s.cues = append(s.cues, cue)
}

func (s *recordingSink) SetAudioVolume(cue string, volume float64) {
	s.log = append(s.log, "volume:"+cue)
	s.volumes = append(s.volumes, volumeCall{Cue: cue, Volume: volume})
}

func (s *recordingSink) SetAnimatorTrigger(trigger string) {
	s.log = append(s.log, "trigger:"+trigger)
	s.triggers = append(s.triggers, trigger)
}

func (s *recordingSink) SetBackgroundMusic(track string) {
	s.log = append(s.log, "music:"+track)
	s.music = append(s.music, track)
}

func (s *recordingSink) SpawnEntity(kind EntityKind, pos cp.Vector, params SpawnParams) EntityID {
	s.nextID++
	s.log = append(s.log, "spawn:"+kind.String())
	s.spawns = append(s.spawns, spawnCall{ID: s.nextID, Kind: kind, Pos: pos, Params: params})
	return s.nextID
}

func (s *recordingSink) DestroyEntity(id EntityID) {
	s.log = append(s.log, "destroy")
	s.destroyed = append(s.destroyed, id)
}

func (s *recordingSink) ReportDefeated() {
	s.log = append(s.log, "defeated")
	s.defeated++
}

func (s *recordingSink) ReportHealthFraction(fraction float64) {
	s.health = append(s.health, fraction)
}

func (s *recordingSink) spawnsOf(kind EntityKind) []spawnCall {
	var out []spawnCall
	for _, sp := range s.spawns {
		if sp.Kind == kind {
			out = append(out, sp)
		}
	}
	return out
}

// scriptedRand replays fixed draws. IntN results are taken modulo n so a
// script can never produce an out-of-range value.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}
