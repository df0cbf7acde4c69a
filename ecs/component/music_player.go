package component

// MusicTheme is a track together with how it should play.
type MusicTheme struct {
	Track  string
	Volume float64
	Loop   bool
}

// MusicPlayer is the encounter's single theme slot. While Queued is set the
// playing theme loses FadeStep volume per frame and Queued replaces it at
// silence. A queued theme with an empty Track fades to nothing.
type MusicPlayer struct {
	TrackVolumes map[string]float64

	MusicTheme
	Queued   *MusicTheme
	FadeStep float64
}

// Fading reports whether the playing theme is on its way out.
func (m *MusicPlayer) Fading() bool {
	return m.Queued != nil
}

// MusicRequest asks for a theme change. Volume 0 uses the player's
// TrackVolumes entry; FadeFrames 0 uses the default fade.
type MusicRequest struct {
	MusicTheme
	FadeFrames int
}

var (
	MusicPlayerComponent  = NewComponent[MusicPlayer]()
	MusicRequestComponent = NewComponent[MusicRequest]()
)
