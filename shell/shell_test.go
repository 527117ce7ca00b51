package shell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benchcoach/dugout/cache"
	"github.com/benchcoach/dugout/config"
	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/season"
)

// flakyStore loads fresh states and fails every save.
type flakyStore struct {
	saveErr error
}

func (f *flakyStore) LoadSeason(team string) (*season.State, error) {
	return season.NewState(), nil
}

func (f *flakyStore) SaveSeason(team string, st *season.State) error {
	return f.saveErr
}

func (f *flakyStore) Close() error { return nil }

func TestIngestSaveFailureDiscardsCachedState(t *testing.T) {
	cfg := &config.Config{}
	assert.NoError(t, cfg.Load(nil))
	cfg.Set("team-name", "Gulls")
	t.Cleanup(func() { cache.Evict("Gulls") })

	ros, err := roster.New([]string{"J Smith"})
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "game.txt")
	assert.NoError(t, os.WriteFile(path, []byte("J Smith grounds out to shortstop.\n"), 0644))

	fs := &flakyStore{saveErr: errors.New("disk full")}
	sc := &ShellController{cfg: cfg, st: fs, ros: ros}
	assert.ErrorIs(t, sc.ingest(path), fs.saveErr)

	// The merge that never reached the store is gone: a fresh session
	// reloads saved state and the same game can be ingested again.
	sess, err := cache.Acquire("Gulls", fs.LoadSeason)
	assert.NoError(t, err)
	assert.Equal(t, 0, sess.State.GamesPlayed)
	assert.Empty(t, sess.State.Processed)
}
