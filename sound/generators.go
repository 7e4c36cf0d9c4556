package sound

import (
	"math"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	WaveSine = iota
	WaveSquare
)

const amplitude = 0.25

// ToneGenerator is an endless fixed pitch tone with a short fade in.
// Wrap it in beep.Take to bound it.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	wave int
	pos  int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, wave int) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, wave: wave}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		phase := math.Mod(g.freq*t, 1)
		var sample float64
		switch g.wave {
		case WaveSquare:
			if phase < 0.5 {
				sample = 1
			} else {
				sample = -1
			}
		default:
			sample = math.Sin(2 * math.Pi * phase)
		}

		// 5ms attack avoids a click
		envelope := math.Min(t/0.005, 1)
		sample *= amplitude * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides from one pitch to another while decaying.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// pitch reaches the target after half a second and stays there
		progress := math.Min(t/0.5, 1)
		freq := g.from + (g.to-g.from)*progress

		sample := amplitude * math.Exp(-t*3) * math.Sin(2*math.Pi*g.phase)
		g.phase = math.Mod(g.phase+freq/float64(g.sr), 1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
