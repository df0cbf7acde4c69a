package component

// AudioChannel is one cue currently sounding.
type AudioChannel struct {
	Cue       string
	Volume    float64
	Remaining float64
}

// Audio is the global mixer state. Cue requests start channels; volume
// requests adjust both the stored cue volume and any live channel.
type Audio struct {
	CueLength float64
	Volumes   map[string]float64
	Channels  []AudioChannel
	Played    []string
}

var AudioComponent = NewComponent[Audio]()

// AudioCue is a one-shot request consumed by the audio system. With
// VolumeOnly set it only changes the cue's volume.
type AudioCue struct {
	Cue        string
	Volume     float64
	VolumeOnly bool
}

var AudioCueComponent = NewComponent[AudioCue]()
