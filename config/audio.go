package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int

	EngineBaseFreq     float64 // oscillator frequency at pitch 1.0, Hz
	EngineVolume       float64
	EnginePitchScale   float64 // engine RPM mapped to pitch 1.0
	EnginePitchFloor   float64 // lowest playback pitch
	EngineUpdateFrames int     // frames between pitch updates
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,

		EngineBaseFreq:     110.0,
		EngineVolume:       0.4,
		EnginePitchScale:   8000.0,
		EnginePitchFloor:   0.1,
		EngineUpdateFrames: 20,
	}
}
