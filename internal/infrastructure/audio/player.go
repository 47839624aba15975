// Package audio plays the simulation's cues through the system speaker.
// All sounds are synthesized; playback failures never reach the caller.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/masks/internal/domain/entity"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

// Player mixes cue sounds and the background loop
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	bgm         *beep.Ctrl
	enabled     bool
	initialized bool
	logger      *log.Logger

	// speaker hooks
	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
	lock        func()
	unlock      func()
}

// NewPlayer creates a player. Nothing is audible until Initialize succeeds.
func NewPlayer(cfg config.AudioConfig, enabled bool, logger *log.Logger) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.BufferMs <= 0 {
		cfg.BufferMs = 100
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		enabled:     enabled,
		logger:      logger,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
	}
}

// Initialize opens the speaker. A failure leaves the player silent; the
// game runs without sound.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	buffer := p.rate.N(time.Duration(p.cfg.BufferMs) * time.Millisecond)
	if err := p.initSpeaker(p.rate, buffer); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return err
	}

	p.play(newVolume(p.mixer, p.cfg.Volume))
	p.initialized = true
	return nil
}

// Play starts a one-shot cue
func (p *Player) Play(c entity.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}

	s := cueStreamer(c, p.rate)
	if s == nil {
		p.logger.Debug("no sound for cue", "cue", c)
		return
	}

	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// BGM pauses or resumes the background loop, starting it on first use
func (p *Player) BGM(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.lock()
	defer p.unlock()

	if !on {
		if p.bgm != nil {
			p.bgm.Paused = true
		}
		return
	}
	if !p.enabled {
		return
	}
	if p.bgm == nil {
		p.bgm = &beep.Ctrl{Streamer: newTheme(p.rate)}
		p.mixer.Add(p.bgm)
	}
	p.bgm.Paused = false
}

// SetEnabled mutes or unmutes. Muting also pauses the background loop.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()

	if !enabled {
		p.BGM(false)
	}
}

// Enabled reports whether cues are audible
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close stops every sound
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.lock()
	p.mixer.Clear()
	p.unlock()

	p.bgm = nil
	p.initialized = false
}
