// Package season folds game records into long-lived cumulative totals,
// exactly once per distinct transcript.
package season

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/benchcoach/dugout/game"
	"github.com/benchcoach/dugout/pbp"
	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/stats"
)

// ErrDuplicateGame signals that this transcript's content hash is already in
// the dedup ledger for this team.
var ErrDuplicateGame = errors.New("transcript already processed")

// State is the cumulative season record for one team. The engine mutates it
// only through merges; loading and saving it is the host's job.
type State struct {
	Team        stats.Record               `json:"team"`
	Players     map[string]stats.Record    `json:"players"`
	Pitchers    map[string]*stats.Pitching `json:"pitchers"`
	GamesPlayed int                        `json:"gamesPlayed"`
	// Archived holds players with historical totals who are no longer on
	// the active roster. Their Players entries are retained, never dropped.
	Archived map[string]bool `json:"archived"`
	// Processed is the dedup ledger of merged transcript hashes.
	Processed map[string]bool `json:"processed"`
}

// NewState returns an empty, fully keyed season state.
func NewState() *State {
	return &State{
		Team:      stats.NewRecord(),
		Players:   make(map[string]stats.Record),
		Pitchers:  make(map[string]*stats.Pitching),
		Archived:  make(map[string]bool),
		Processed: make(map[string]bool),
	}
}

// Normalize backfills any stat keys missing from records loaded from
// storage written by an older version, and allocates nil maps.
func (s *State) Normalize() {
	if s.Team == nil {
		s.Team = stats.NewRecord()
	}
	s.Team.Normalize()
	if s.Players == nil {
		s.Players = make(map[string]stats.Record)
	}
	for _, rec := range s.Players {
		rec.Normalize()
	}
	if s.Pitchers == nil {
		s.Pitchers = make(map[string]*stats.Pitching)
	}
	if s.Archived == nil {
		s.Archived = make(map[string]bool)
	}
	if s.Processed == nil {
		s.Processed = make(map[string]bool)
	}
}

// Hash computes the content hash of a transcript, scoped by team. The
// transcript is canonicalized first so that re-pastes differing only in
// whitespace dedup correctly.
func Hash(team, transcript string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(team+"\n"+pbp.Canonical(transcript)))
}

// MergeGame folds one game record into the season, marking its hash as
// processed and crediting one game played. Every mutation happens after the
// dedup check; the hash is only considered consumed once the merge has
// fully succeeded.
func (s *State) MergeGame(rec *game.Record, hash string) error {
	if s.Processed[hash] {
		return ErrDuplicateGame
	}
	s.Team.Add(rec.Team)
	for name, r := range rec.Players {
		s.player(name).Add(r)
	}
	for name := range rec.Appeared {
		s.player(name).Incr(stats.GamesPlayed)
	}
	for name, p := range rec.Pitchers {
		cur, ok := s.Pitchers[name]
		if !ok {
			cur = &stats.Pitching{}
			s.Pitchers[name] = cur
		}
		cur.Add(p)
	}
	s.GamesPlayed++
	s.Processed[hash] = true
	log.Debug().Str("hash", hash).Int("gamesPlayed", s.GamesPlayed).Msg("merged game")
	return nil
}

// ReconcileRoster moves players with season totals who left the roster into
// the archived set, and reactivates archived players who reappear on it.
func (s *State) ReconcileRoster(ros *roster.Roster) {
	active := lo.SliceToMap(ros.Names(), func(n string) (string, bool) { return n, true })
	departed := lo.Filter(lo.Keys(s.Players), func(name string, _ int) bool {
		return !active[name]
	})
	for _, name := range departed {
		s.Archived[name] = true
	}
	for name := range active {
		delete(s.Archived, name)
	}
}

func (s *State) player(name string) stats.Record {
	rec, ok := s.Players[name]
	if !ok {
		rec = stats.NewRecord()
		s.Players[name] = rec
	}
	return rec
}

// Process runs the whole pipeline for one transcript: precondition checks,
// dedup, aggregation, merge, and roster reconciliation. It returns the
// game record and the transcript hash; on ErrDuplicateGame the state is
// untouched and the hash is still returned for the host's ledger.
func Process(s *State, transcript string, ros *roster.Roster, opts game.Options) (*game.Record, string, error) {
	if ros == nil || ros.Len() == 0 {
		return nil, "", roster.ErrEmptyRoster
	}
	if len(pbp.NormalizeLines(transcript)) == 0 {
		return nil, "", game.ErrEmptyTranscript
	}
	hash := Hash(opts.TeamName, transcript)
	if s.Processed[hash] {
		return nil, hash, ErrDuplicateGame
	}
	rec, err := game.Aggregate(transcript, ros, opts)
	if err != nil {
		return nil, hash, err
	}
	if err := s.MergeGame(rec, hash); err != nil {
		return nil, hash, err
	}
	s.ReconcileRoster(ros)
	return rec, hash, nil
}
