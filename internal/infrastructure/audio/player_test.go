package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/masks/internal/domain/entity"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

// newTestPlayer returns a player whose speaker hooks never touch a device
func newTestPlayer(enabled bool, initErr error) *Player {
	p := NewPlayer(config.AudioConfig{SampleRate: 44100, Volume: 0.5, BufferMs: 50}, enabled, nil)
	p.initSpeaker = func(beep.SampleRate, int) error { return initErr }
	p.play = func(...beep.Streamer) {}
	p.lock = func() {}
	p.unlock = func() {}
	return p
}

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer(config.AudioConfig{}, true, nil)

	assert.Equal(t, beep.SampleRate(44100), p.rate)
	assert.Equal(t, 100, p.cfg.BufferMs)
	assert.True(t, p.Enabled())
}

func TestPlayer_InitializeFailureIsSilent(t *testing.T) {
	p := newTestPlayer(true, errors.New("no audio device"))

	err := p.Initialize()
	assert.Error(t, err)

	p.Play(entity.CueJump)
	p.BGM(true)
	p.Close()
	assert.Zero(t, p.mixer.Len())
}

func TestPlayer_Play(t *testing.T) {
	p := newTestPlayer(true, nil)
	require.NoError(t, p.Initialize())
	require.NoError(t, p.Initialize(), "initialize is idempotent")

	p.Play(entity.CueJump)
	p.Play(entity.CueWin)
	p.Play(entity.Cue(99))

	assert.Equal(t, 2, p.mixer.Len())
}

func TestPlayer_Muted(t *testing.T) {
	p := newTestPlayer(false, nil)
	require.NoError(t, p.Initialize())

	p.Play(entity.CueDie)
	p.BGM(true)

	assert.Zero(t, p.mixer.Len())
	assert.Nil(t, p.bgm)
}

func TestPlayer_BGM(t *testing.T) {
	p := newTestPlayer(true, nil)
	require.NoError(t, p.Initialize())

	p.BGM(false)
	assert.Nil(t, p.bgm, "pausing before start is a no-op")

	p.BGM(true)
	require.NotNil(t, p.bgm)
	assert.False(t, p.bgm.Paused)
	assert.Equal(t, 1, p.mixer.Len())

	p.BGM(false)
	assert.True(t, p.bgm.Paused)

	p.BGM(true)
	assert.False(t, p.bgm.Paused)
	assert.Equal(t, 1, p.mixer.Len(), "the loop is resumed, not restarted")

	p.SetEnabled(false)
	assert.True(t, p.bgm.Paused)
	assert.False(t, p.Enabled())

	p.Close()
	assert.Zero(t, p.mixer.Len())
	assert.Nil(t, p.bgm)
}

func TestTone_Drains(t *testing.T) {
	rate := beep.SampleRate(44100)
	tn := newTone(rate, 300, 600, 10*time.Millisecond, waveSquare, 1)
	total := rate.N(10 * time.Millisecond)

	buf := make([][2]float64, 256)
	streamed := 0
	for {
		n, ok := tn.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 1.0)
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
			assert.Equal(t, buf[i][0], buf[i][1])
		}
		streamed += n
	}

	assert.Equal(t, total, streamed)
	assert.NoError(t, tn.Err())
}

func TestTheme_Endless(t *testing.T) {
	g := newTheme(beep.SampleRate(22050))
	buf := make([][2]float64, 4096)

	for i := 0; i < 20; i++ {
		n, ok := g.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
	}
}

func TestCueStreamer(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, c := range []entity.Cue{entity.CueJump, entity.CueLand, entity.CueDie, entity.CueWin, entity.CueCollect} {
		t.Run(c.String(), func(t *testing.T) {
			s := cueStreamer(c, rate)
			require.NotNil(t, s)

			buf := make([][2]float64, 512)
			n, ok := s.Stream(buf)
			assert.True(t, ok)
			assert.Positive(t, n)
		})
	}

	assert.Nil(t, cueStreamer(entity.Cue(42), rate))
}

func TestWaveType_Sample(t *testing.T) {
	assert.Equal(t, 1.0, waveSquare.sample(0.25))
	assert.Equal(t, -1.0, waveSquare.sample(0.75))
	assert.Equal(t, -1.0, waveSaw.sample(0))
	assert.InDelta(t, 1.0, waveSine.sample(0.25), 1e-12)
}
