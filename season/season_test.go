package season

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benchcoach/dugout/game"
	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/stats"
)

func seasonRoster(t *testing.T, names ...string) *roster.Roster {
	t.Helper()
	if len(names) == 0 {
		names = []string{"J Smith", "R Cruz", "D Ortiz"}
	}
	r, err := roster.New(names)
	assert.NoError(t, err)
	return r
}

var seasonTranscript = strings.Join([]string{
	"Bottom 1st - Eagles batting",
	"J Smith grounds out to shortstop.",
	"R Cruz flies out to deep center field.",
	"J Smith steals 2nd.",
}, "\n")

var opts = game.Options{TeamName: "Eagles"}

func TestProcessMergesOnce(t *testing.T) {
	st := NewState()
	ros := seasonRoster(t)

	rec, hash, err := Process(st, seasonTranscript, ros, opts)
	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.NotEmpty(t, hash)
	assert.Equal(t, 1, st.GamesPlayed)
	assert.Equal(t, 1, st.Team[stats.GroundBall])
	assert.Equal(t, 1, st.Players["J Smith"][stats.GamesPlayed])
	assert.True(t, st.Processed[hash])
}

// Merging the identical transcript twice must be rejected and leave every
// total untouched.
func TestProcessIdempotent(t *testing.T) {
	st := NewState()
	ros := seasonRoster(t)

	_, hash1, err := Process(st, seasonTranscript, ros, opts)
	assert.NoError(t, err)

	before, err := json.Marshal(st)
	assert.NoError(t, err)

	_, hash2, err := Process(st, seasonTranscript, ros, opts)
	assert.ErrorIs(t, err, ErrDuplicateGame)
	assert.Equal(t, hash1, hash2)

	after, err := json.Marshal(st)
	assert.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

// Whitespace-only differences hash identically; a genuinely different game
// does not.
func TestHashCanonicalization(t *testing.T) {
	reformatted := "\n" + strings.ReplaceAll(seasonTranscript, " ", "  ") + "\n\n"
	assert.Equal(t, Hash("Eagles", seasonTranscript), Hash("Eagles", reformatted))
	assert.NotEqual(t, Hash("Eagles", seasonTranscript), Hash("Eagles", seasonTranscript+"\nR Cruz walks."))
	// Hashes are team-scoped.
	assert.NotEqual(t, Hash("Eagles", seasonTranscript), Hash("Hawks", seasonTranscript))
}

func TestProcessPreconditions(t *testing.T) {
	st := NewState()
	_, _, err := Process(st, "", seasonRoster(t), opts)
	assert.ErrorIs(t, err, game.ErrEmptyTranscript)
	assert.Equal(t, 0, st.GamesPlayed)

	_, _, err = Process(st, seasonTranscript, nil, opts)
	assert.ErrorIs(t, err, roster.ErrEmptyRoster)
	assert.Empty(t, st.Processed)
}

func TestReconcileRosterArchival(t *testing.T) {
	st := NewState()
	_, _, err := Process(st, seasonTranscript, seasonRoster(t), opts)
	assert.NoError(t, err)
	smithBefore := st.Players["J Smith"].Clone()

	// Smith leaves the roster; totals are retained but archived.
	newGame := strings.Join([]string{
		"Bottom 1st - Eagles batting",
		"R Cruz grounds out to third baseman.",
	}, "\n")
	_, _, err = Process(st, newGame, seasonRoster(t, "R Cruz", "D Ortiz"), opts)
	assert.NoError(t, err)
	assert.True(t, st.Archived["J Smith"])
	assert.Equal(t, smithBefore, st.Players["J Smith"])

	// Smith reappears and is reactivated.
	anotherGame := "Bottom 1st - Eagles batting\nJ Smith flies out to left field."
	_, _, err = Process(st, anotherGame, seasonRoster(t), opts)
	assert.NoError(t, err)
	assert.False(t, st.Archived["J Smith"])
}

func TestMergeGameCreatesPlayersOnDemand(t *testing.T) {
	st := NewState()
	rec, err := game.Aggregate(seasonTranscript, seasonRoster(t), opts)
	assert.NoError(t, err)
	assert.NoError(t, st.MergeGame(rec, "abc"))
	assert.Contains(t, st.Players, "J Smith")
	assert.Contains(t, st.Players, "R Cruz")
	assert.ErrorIs(t, st.MergeGame(rec, "abc"), ErrDuplicateGame)
}

func TestNormalizeBackfillsLoadedState(t *testing.T) {
	// Simulate a state saved by an older version: nil maps, sparse records.
	st := &State{
		Team:    stats.Record{"GB": 2},
		Players: map[string]stats.Record{"J Smith": {"GB": 2}},
	}
	st.Normalize()
	assert.Equal(t, 2, st.Team["GB"])
	assert.Equal(t, 0, st.Team["SB-2B"])
	assert.Equal(t, 0, st.Players["J Smith"]["FB-CF"])
	assert.NotNil(t, st.Archived)
	assert.NotNil(t, st.Processed)
}

func TestPitchingMergesByName(t *testing.T) {
	st := NewState()
	transcript := strings.Join([]string{
		"Top 1st - Hawks batting",
		"D Ortiz pitching",
		"B Opposing grounds out. 1 out",
		"C Opposing flies out. 2 outs",
		"E Opposing strikes out. 3 outs",
	}, "\n")
	ros := seasonRoster(t)
	_, _, err := Process(st, transcript, ros, opts)
	assert.NoError(t, err)
	_, _, err = Process(st, transcript+"\n", ros, opts)
	assert.ErrorIs(t, err, ErrDuplicateGame)

	p := st.Pitchers["D Ortiz"]
	assert.NotNil(t, p)
	assert.Equal(t, 3, p.Outs)
	assert.Equal(t, "1.0", p.InningsPitched())
}
