package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/masks/internal/application/replay"
	"github.com/younwookim/masks/internal/application/state"
	"github.com/younwookim/masks/internal/application/system"
	"github.com/younwookim/masks/internal/infrastructure/storage"
)

// withFlags sets the package-level flags for one test
func withFlags(t *testing.T, configDir, dbPath string) {
	t.Helper()
	oldConfig, oldDB := flagConfigDir, flagDBPath
	flagConfigDir, flagDBPath = configDir, dbPath
	t.Cleanup(func() {
		flagConfigDir, flagDBPath = oldConfig, oldDB
	})
}

func TestLoadBundle_Embedded(t *testing.T) {
	withFlags(t, "", "")

	bundle, err := loadBundle()
	require.NoError(t, err)

	assert.Equal(t, []string{"nature", "blue", "desert", "red"}, bundle.Game.Levels)
	assert.Equal(t, "nature", bundle.Game.FirstLevel())
	for _, id := range bundle.Game.Levels {
		_, ok := bundle.Level(id)
		assert.True(t, ok, "level %s should be loaded", id)
	}
}

func TestLoadBundle_Directory(t *testing.T) {
	withFlags(t, "configs", "")

	bundle, err := loadBundle()
	require.NoError(t, err)
	assert.Len(t, bundle.Levels, 4)
}

func TestLoadBundle_MissingDirectory(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "nope"), "")

	_, err := loadBundle()
	assert.Error(t, err)
}

func TestPrintLevels(t *testing.T) {
	withFlags(t, "", "")
	bundle, err := loadBundle()
	require.NoError(t, err)

	var buf bytes.Buffer
	printLevels(&buf, bundle)
	out := buf.String()

	for _, id := range bundle.Game.Levels {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "victory", "the last level leads to the victory screen")
	assert.Contains(t, out, "3000x2000")
}

func TestSimulateFile(t *testing.T) {
	withFlags(t, "", "")
	bundle, err := loadBundle()
	require.NoError(t, err)

	rec := replay.NewRecorder("nature", 3)
	for range 120 {
		rec.RecordFrame(system.InputState{})
	}
	path := filepath.Join(t.TempDir(), "idle.json")
	require.NoError(t, rec.Save(path))

	res, err := simulateFile(path, bundle, nil)
	require.NoError(t, err)

	// An idle player never leaves spawn
	assert.Equal(t, "nature", res.Level)
	assert.Equal(t, state.StateRunning, res.State)
	assert.Equal(t, 120, res.Frame)
	assert.Equal(t, 3, res.Lives)
	assert.Zero(t, res.Deaths)

	var buf bytes.Buffer
	printResult(&buf, res)
	assert.Contains(t, buf.String(), "Replay: nature")
	assert.Contains(t, buf.String(), "Running")
}

func TestSimulateFile_UnknownLevel(t *testing.T) {
	withFlags(t, "", "")
	bundle, err := loadBundle()
	require.NoError(t, err)

	rec := replay.NewRecorder("volcano", 3)
	rec.RecordFrame(system.InputState{})
	path := filepath.Join(t.TempDir(), "volcano.json")
	require.NoError(t, rec.Save(path))

	_, err = simulateFile(path, bundle, nil)
	assert.ErrorContains(t, err, "unknown level")
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		res  replay.Result
		want string
	}{
		{"run complete", replay.Result{Advanced: true, State: state.StateWon}, "run complete"},
		{"next level", replay.Result{Advanced: true, Next: "blue", State: state.StateWon}, "next: blue"},
		{"menu", replay.Result{Menu: true, State: state.StateDead}, "returned to menu"},
		{"dead", replay.Result{State: state.StateDead}, "dead"},
		{"running", replay.Result{State: state.StateRunning}, "Running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, outcome(tt.res), tt.want)
		})
	}
}

func TestResolveAudioEnabled(t *testing.T) {
	tests := []struct {
		name          string
		stored        bool
		mute, unmute  bool
		want          bool
		wantPersisted bool
	}{
		{"stored on", true, false, false, true, true},
		{"stored off", false, false, false, false, false},
		{"mute", true, true, false, false, false},
		{"unmute", false, false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldMute, oldUnmute := flagMute, flagUnmute
			flagMute, flagUnmute = tt.mute, tt.unmute
			t.Cleanup(func() { flagMute, flagUnmute = oldMute, oldUnmute })

			store := storage.NewMemoryStore(0)
			require.NoError(t, store.SaveAudioEnabled(tt.stored))

			assert.Equal(t, tt.want, resolveAudioEnabled(store, newLogger()))

			profile, err := store.LoadProfile()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPersisted, profile.AudioEnabled)
		})
	}
}

func TestLivesReset(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "profile.db")
	withFlags(t, "", dbPath)

	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveLives(1))
	require.NoError(t, store.Close())

	var buf bytes.Buffer
	livesResetCmd.SetOut(&buf)
	require.NoError(t, livesResetCmd.RunE(livesResetCmd, nil))
	assert.Contains(t, buf.String(), "Lives reset.")

	store, err = storage.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	lives, err := store.LoadLives()
	require.NoError(t, err)
	assert.Zero(t, lives)
}
