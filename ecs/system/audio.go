package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

const (
	defaultCueVolume = 1.0
	defaultCueLength = 1.0
	playedHistory    = 16
)

// PlayAudioCue queues a one-shot cue for the audio system.
func PlayAudioCue(w *ecs.World, cue string) {
	queueAudioCue(w, &component.AudioCue{Cue: cue})
}

// SetAudioVolume queues a volume change for cue. Live channels of the cue
// follow it; a volume of zero silences them.
func SetAudioVolume(w *ecs.World, cue string, volume float64) {
	queueAudioCue(w, &component.AudioCue{Cue: cue, Volume: volume, VolumeOnly: true})
}

func queueAudioCue(w *ecs.World, req *component.AudioCue) {
	if w == nil || req == nil || req.Cue == "" {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.AudioCueComponent.Kind(), req)
}

// AudioSystem mixes cue requests into the channels of the global Audio
// component. It keeps no playback state of its own.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var requests []component.AudioCue
	ecs.ForEach(w, component.AudioCueComponent.Kind(), func(e ecs.Entity, req *component.AudioCue) {
		requests = append(requests, *req)
		ecs.DestroyEntity(w, e)
	})

	ent, ok := ecs.First(w, component.AudioComponent.Kind())
	if !ok {
		return
	}
	mixer, ok := ecs.Get(w, ent, component.AudioComponent.Kind())
	if !ok {
		return
	}
	if mixer.Volumes == nil {
		mixer.Volumes = make(map[string]float64)
	}

	dt := w.FrameTime()
	live := mixer.Channels[:0]
	for _, ch := range mixer.Channels {
		ch.Remaining -= dt
		if ch.Remaining > 0 {
			live = append(live, ch)
		}
	}
	mixer.Channels = live

	for _, req := range requests {
		if req.VolumeOnly {
			a.setVolume(mixer, req.Cue, req.Volume)
			continue
		}
		a.play(mixer, req.Cue)
	}
}

func (a *AudioSystem) setVolume(mixer *component.Audio, cue string, volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	mixer.Volumes[cue] = volume

	live := mixer.Channels[:0]
	for _, ch := range mixer.Channels {
		if ch.Cue == cue {
			if volume <= 0 {
				continue
			}
			ch.Volume = volume
		}
		live = append(live, ch)
	}
	mixer.Channels = live
}

func (a *AudioSystem) play(mixer *component.Audio, cue string) {
	volume, ok := mixer.Volumes[cue]
	if !ok {
		volume = defaultCueVolume
	}
	length := mixer.CueLength
	if length <= 0 {
		length = defaultCueLength
	}

	mixer.Played = append(mixer.Played, cue)
	if len(mixer.Played) > playedHistory {
		mixer.Played = mixer.Played[len(mixer.Played)-playedHistory:]
	}

	for i := range mixer.Channels {
		if mixer.Channels[i].Cue == cue {
			mixer.Channels[i].Volume = volume
			mixer.Channels[i].Remaining = length
			return
		}
	}
	mixer.Channels = append(mixer.Channels, component.AudioChannel{Cue: cue, Volume: volume, Remaining: length})
}
