package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benchcoach/dugout/season"
	"github.com/benchcoach/dugout/stats"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "dugout.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadMissingSeasonIsFresh(t *testing.T) {
	s := tempStore(t)
	st, err := s.LoadSeason("Eagles")
	assert.NoError(t, err)
	assert.Equal(t, 0, st.GamesPlayed)
	assert.Empty(t, st.Processed)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	st := season.NewState()
	st.Team.Incr(stats.GroundBall)
	st.Team.Incr(stats.Shortstop)
	st.GamesPlayed = 3
	st.Processed["abc123"] = true
	st.Archived["J Smith"] = true
	st.Pitchers["D Ortiz"] = &stats.Pitching{Outs: 9, Strikeouts: 4}

	assert.NoError(t, s.SaveSeason("Eagles", st))

	loaded, err := s.LoadSeason("Eagles")
	assert.NoError(t, err)
	assert.Equal(t, 3, loaded.GamesPlayed)
	assert.Equal(t, 1, loaded.Team[stats.GroundBall])
	assert.True(t, loaded.Processed["abc123"])
	assert.True(t, loaded.Archived["J Smith"])
	assert.Equal(t, 9, loaded.Pitchers["D Ortiz"].Outs)
}

func TestSaveOverwrites(t *testing.T) {
	s := tempStore(t)
	st := season.NewState()
	assert.NoError(t, s.SaveSeason("Eagles", st))
	st.GamesPlayed = 5
	assert.NoError(t, s.SaveSeason("Eagles", st))

	loaded, err := s.LoadSeason("Eagles")
	assert.NoError(t, err)
	assert.Equal(t, 5, loaded.GamesPlayed)
}

func TestTeamsAreIsolated(t *testing.T) {
	s := tempStore(t)
	a := season.NewState()
	a.GamesPlayed = 2
	assert.NoError(t, s.SaveSeason("Eagles", a))

	b, err := s.LoadSeason("Hawks")
	assert.NoError(t, err)
	assert.Equal(t, 0, b.GamesPlayed)
}
