// Package assets synthesizes the encounter's sound cues for the ebiten
// front-end. Cues are short tones generated once and cached.
package assets

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100

	defaultToneSeconds = 0.25
	fadeSeconds        = 0.02
)

// Tone describes one synthesized cue: a sine sweep from Freq to EndFreq.
type Tone struct {
	Freq    float64
	EndFreq float64
	Seconds float64
}

var cueTones = map[string]Tone{
	"boss_wake":      {Freq: 110, EndFreq: 220, Seconds: 0.8},
	"boss_explode":   {Freq: 180, EndFreq: 40, Seconds: 1.2},
	"laser_fire":     {Freq: 880, EndFreq: 660, Seconds: 0.6},
	"enemy_explode":  {Freq: 300, EndFreq: 90, Seconds: 0.3},
	"rocket_fire":    {Freq: 520, EndFreq: 760, Seconds: 0.2},
	"rocket_explode": {Freq: 240, EndFreq: 60, Seconds: 0.4},
}

// ToneFor returns the tone for a cue. Unknown cues get a short blip whose
// pitch is derived from the name.
func ToneFor(cue string) Tone {
	if t, ok := cueTones[cue]; ok {
		return t
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(cue))
	freq := 200 + float64(h.Sum32()%600)
	return Tone{Freq: freq, EndFreq: freq, Seconds: defaultToneSeconds}
}

// Synthesize renders t as 16-bit little-endian stereo PCM.
func Synthesize(t Tone, rate int) []byte {
	n := int(t.Seconds * float64(rate))
	if n <= 0 {
		return nil
	}
	fade := int(fadeSeconds * float64(rate))

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / float64(rate)

		amp := 0.3
		if i < fade {
			amp *= float64(i) / float64(fade)
		}
		if tail := n - i; tail < fade {
			amp *= float64(tail) / float64(fade)
		}
		s := int16(math.Sin(phase) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// Sounds plays cues through an ebiten audio context.
type Sounds struct {
	ctx *audio.Context

	mu      sync.Mutex
	cache   map[string][]byte
	playing []*audio.Player
}

func NewSounds() *Sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Sounds{ctx: ctx, cache: make(map[string][]byte)}
}

// Play starts a cue at volume in [0,1].
func (s *Sounds) Play(cue string, volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pcm, ok := s.cache[cue]
	if !ok {
		pcm = Synthesize(ToneFor(cue), s.ctx.SampleRate())
		s.cache[cue] = pcm
	}
	if len(pcm) == 0 {
		return
	}

	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()

	live := s.playing[:0]
	for _, old := range s.playing {
		if old.IsPlaying() {
			live = append(live, old)
		}
	}
	s.playing = append(live, p)
}
