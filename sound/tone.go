package sound

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// oscillator is an endless 16-bit stereo PCM stream. The waveform layers
// three harmonics so the loop reads as a motor rather than a test beep.
type oscillator struct {
	mu    sync.Mutex
	freq  float64
	rate  float64
	phase float64
	carry []byte
}

func (o *oscillator) setFrequency(f float64) {
	o.mu.Lock()
	o.freq = f
	o.mu.Unlock()
}

func (o *oscillator) Read(p []byte) (int, error) {
	o.mu.Lock()
	freq := o.freq
	o.mu.Unlock()

	n := 0
	for len(o.carry) > 0 && n < len(p) {
		p[n] = o.carry[0]
		o.carry = o.carry[1:]
		n++
	}

	step := 2 * math.Pi * freq / o.rate
	for n < len(p) {
		v := math.Sin(o.phase) + 0.35*math.Sin(2*o.phase+0.1) + 0.2*math.Sin(3*o.phase+0.2)
		o.phase += step
		if o.phase > 2*math.Pi {
			o.phase -= 2 * math.Pi
		}
		// Peak amplitude of the harmonic stack is 1.55; leave headroom.
		s := int16(v / 1.55 * 0.85 * math.MaxInt16)
		frame := [4]byte{byte(s), byte(s >> 8), byte(s), byte(s >> 8)}
		m := copy(p[n:], frame[:])
		n += m
		if m < 4 {
			o.carry = append(o.carry, frame[m:]...)
		}
	}
	return n, nil
}

// Tone is a looping oscillator played through the shared audio context.
// It starts paused.
type Tone struct {
	player *audio.Player
	osc    *oscillator
	base   float64
}

// NewTone creates a paused loop whose pitch 1.0 sits at baseFreq Hz.
func NewTone(baseFreq, volume float64) (*Tone, error) {
	ctx := Context()
	osc := &oscillator{
		freq: baseFreq,
		rate: float64(ctx.SampleRate()),
	}
	player, err := ctx.NewPlayer(osc)
	if err != nil {
		return nil, err
	}
	player.SetVolume(volume)
	return &Tone{player: player, osc: osc, base: baseFreq}, nil
}

func (t *Tone) SetPitch(pitch float64) {
	t.osc.setFrequency(t.base * pitch)
}

func (t *Tone) SetPaused(paused bool) {
	if paused {
		t.player.Pause()
	} else {
		t.player.Play()
	}
}

func (t *Tone) Paused() bool {
	return !t.player.IsPlaying()
}

func (t *Tone) Close() error {
	return t.player.Close()
}
