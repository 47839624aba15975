package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/younwookim/masks/internal/domain/entity"
)

// waveType defines oscillator wave shapes
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

func (w waveType) sample(phase float64) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone is a finite sweep from one frequency to another with a short
// attack and a linear release
type tone struct {
	rate     beep.SampleRate
	from, to float64
	wave     waveType
	gain     float64
	phase    float64
	pos      int
	total    int
}

func newTone(rate beep.SampleRate, from, to float64, d time.Duration, wave waveType, gain float64) *tone {
	return &tone{rate: rate, from: from, to: to, wave: wave, gain: gain, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		env := math.Min(progress/0.05, 1) * (1 - progress)
		v := t.gain * env * t.wave.sample(t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// theme is the endless background loop: a plucked bass line, one note per beat
type theme struct {
	rate  beep.SampleRate
	notes []float64
	beat  int
	phase float64
	pos   int
}

func newTheme(rate beep.SampleRate) *theme {
	return &theme{
		rate:  rate,
		notes: []float64{110, 130.81, 146.83, 130.81, 98, 110, 123.47, 146.83},
		beat:  rate.N(300 * time.Millisecond),
	}
}

func (g *theme) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.notes[(g.pos/g.beat)%len(g.notes)]
		t := float64(g.pos%g.beat) / float64(g.rate)

		v := 0.2 * math.Exp(-t*6) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.phase += note / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *theme) Err() error { return nil }

// newVolume scales a stream by a linear volume.
// math.Log2(0) is -Inf, so 0 volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueStreamer synthesizes the sound for a cue, or nil for an unknown cue
func cueStreamer(c entity.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case entity.CueJump:
		return newTone(rate, 300, 620, 120*time.Millisecond, waveSquare, 0.3)
	case entity.CueLand:
		return newTone(rate, 120, 60, 80*time.Millisecond, waveSine, 0.6)
	case entity.CueDie:
		return newTone(rate, 420, 90, 600*time.Millisecond, waveSaw, 0.4)
	case entity.CueCollect:
		return beep.Mix(
			newTone(rate, 880, 880, 250*time.Millisecond, waveSine, 0.5),
			newTone(rate, 1760, 1760, 250*time.Millisecond, waveSine, 0.2),
		)
	case entity.CueWin:
		return beep.Seq(
			newTone(rate, 523.25, 523.25, 120*time.Millisecond, waveSquare, 0.3),
			newTone(rate, 659.25, 659.25, 120*time.Millisecond, waveSquare, 0.3),
			newTone(rate, 783.99, 783.99, 240*time.Millisecond, waveSquare, 0.3),
		)
	default:
		return nil
	}
}
