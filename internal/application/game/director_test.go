package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/masks/internal/application/scene"
	"github.com/younwookim/masks/internal/application/scene/playing"
	"github.com/younwookim/masks/internal/infrastructure/config"
	"github.com/younwookim/masks/internal/infrastructure/storage"
)

func createTestDirector(t *testing.T) *Director {
	t.Helper()
	bundle, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)

	return NewDirector(bundle, playing.Deps{Store: storage.NewMemoryStore(0)})
}

func TestDirector_Level(t *testing.T) {
	d := createTestDirector(t)

	s, err := d.Level("desert")
	require.NoError(t, err)
	assert.Equal(t, "playing:desert", s.Name())

	p, ok := s.(*playing.Playing)
	require.True(t, ok)
	assert.Equal(t, 3, p.Session().Lives(), "empty profile starts with the configured lives")

	_, err = d.Level("moon")
	assert.Error(t, err)
}

func TestDirector_FirstLevel(t *testing.T) {
	d := createTestDirector(t)

	assert.Equal(t, "nature", d.FirstLevel())
}

func TestDirector_Menu(t *testing.T) {
	d := createTestDirector(t)

	assert.Equal(t, "menu:title", d.Menu(scene.MenuTitle).Name())
	assert.Equal(t, "menu:victory", d.Menu(scene.MenuVictory).Name())
}

func TestDirector_WalksLevelChain(t *testing.T) {
	d := createTestDirector(t)

	id := d.FirstLevel()
	var visited []string
	for id != "" && len(visited) < 10 {
		visited = append(visited, id)
		cfg, ok := d.bundle.Level(id)
		require.True(t, ok)
		id = cfg.Next
	}

	assert.Equal(t, []string{"nature", "blue", "desert", "red"}, visited)
}
