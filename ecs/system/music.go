package system

import (
	"strings"

	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/rs/zerolog"
)

const (
	defaultMusicVolume     = 1.0
	defaultMusicFadeFrames = 30
)

// MusicSystem owns the theme slot on the music player entity. Requests are
// entities; the last one queued in a frame wins.
type MusicSystem struct {
	log zerolog.Logger
}

func NewMusicSystem(log zerolog.Logger) *MusicSystem {
	return &MusicSystem{log: log.With().Str("system", "music").Logger()}
}

// RequestMusic loops track at its configured volume.
func RequestMusic(w *ecs.World, track string) {
	RequestMusicWithOptions(w, &component.MusicRequest{
		MusicTheme: component.MusicTheme{Track: track, Loop: true},
	})
}

func RequestMusicWithOptions(w *ecs.World, req *component.MusicRequest) {
	if w == nil || req == nil {
		return
	}
	_ = ecs.Add(w, ecs.CreateEntity(w), component.MusicRequestComponent.Kind(), req)
}

// StopMusic fades the playing theme to silence.
func StopMusic(w *ecs.World) {
	RequestMusicWithOptions(w, &component.MusicRequest{})
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	req, requested := takeMusicRequest(w)

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())

	before := player.Track
	if requested {
		m.log.Debug().Str("track", req.Track).Str("playing", before).Msg("music requested")
		queueTheme(player, req)
	}
	stepFade(player)

	if player.Track != before {
		pushEvent(w, EventMusicChanged, player.Track)
	}
}

func takeMusicRequest(w *ecs.World) (component.MusicRequest, bool) {
	var (
		last  component.MusicRequest
		found bool
	)
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(e ecs.Entity, req *component.MusicRequest) {
		last, found = *req, true
		ecs.DestroyEntity(w, e)
	})
	return last, found
}

func queueTheme(player *component.MusicPlayer, req component.MusicRequest) {
	theme := req.MusicTheme
	theme.Track = strings.TrimSpace(theme.Track)
	theme.Volume = themeVolume(player, theme)
	if theme.Track == "" {
		theme = component.MusicTheme{}
	}

	switch {
	case theme.Track != "" && theme.Track == player.Track && !player.Fading():
		player.Volume = theme.Volume
	case player.Track == "":
		player.Queued = nil
		player.FadeStep = 0
		player.MusicTheme = theme
	default:
		frames := req.FadeFrames
		if frames <= 0 {
			frames = defaultMusicFadeFrames
		}
		player.Queued = &theme
		player.FadeStep = player.Volume / float64(frames)
		if player.FadeStep <= 0 {
			player.FadeStep = 1
		}
	}
}

func themeVolume(player *component.MusicPlayer, theme component.MusicTheme) float64 {
	v := theme.Volume
	if v <= 0 {
		v = player.TrackVolumes[theme.Track]
	}
	if v <= 0 {
		v = defaultMusicVolume
	}
	return min(v, 1)
}

func stepFade(player *component.MusicPlayer) {
	if !player.Fading() {
		return
	}
	player.Volume -= player.FadeStep
	if player.Volume > 0 {
		return
	}
	player.MusicTheme = *player.Queued
	player.Queued = nil
	player.FadeStep = 0
}
