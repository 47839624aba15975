package level

import (
	"time"

	"github.com/younwookim/masks/internal/domain/entity"
)

// Cues receives fire-and-forget audio triggers.
// Implementations swallow their own playback failures.
type Cues interface {
	Play(c entity.Cue)
	BGM(on bool)
}

// ProfileStore persists the lives counter between sessions.
// A stored value of 0 (or none) means "start over".
type ProfileStore interface {
	LoadLives() (int, error)
	SaveLives(lives int) error
}

// Navigator leaves the session. Advance with an empty level id means the
// last level was cleared.
type Navigator interface {
	Advance(levelID string, after time.Duration)
	ReturnToMenu()
}

type nopCues struct{}

func (nopCues) Play(entity.Cue) {}
func (nopCues) BGM(bool)        {}

type nopNavigator struct{}

func (nopNavigator) Advance(string, time.Duration) {}
func (nopNavigator) ReturnToMenu()                 {}
