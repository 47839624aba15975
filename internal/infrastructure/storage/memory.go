package storage

// MemoryStore keeps the profile in memory. Used for headless replays so a
// re-simulation never touches the player's real profile.
type MemoryStore struct {
	profile Profile
}

// NewMemoryStore creates a store holding the given lives and audio enabled
func NewMemoryStore(lives int) *MemoryStore {
	return &MemoryStore{profile: Profile{Lives: lives, AudioEnabled: true}}
}

func (m *MemoryStore) LoadProfile() (Profile, error) { return m.profile, nil }

func (m *MemoryStore) LoadLives() (int, error) { return m.profile.Lives, nil }

func (m *MemoryStore) SaveLives(lives int) error {
	m.profile.Lives = lives
	return nil
}

func (m *MemoryStore) SaveAudioEnabled(enabled bool) error {
	m.profile.AudioEnabled = enabled
	return nil
}
