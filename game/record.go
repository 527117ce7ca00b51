// Package game runs one pass over a single transcript and produces that
// game's statistics record.
package game

import (
	"errors"

	"github.com/benchcoach/dugout/stats"
)

var ErrEmptyTranscript = errors.New("transcript has no lines")

// Record is the aggregate of exactly one game. It is created fresh per
// transcript, merged into the season, and discarded.
type Record struct {
	Team     stats.Record
	Players  map[string]stats.Record
	Pitchers map[string]*stats.Pitching
	// Appeared holds the roster players credited with a game appearance.
	Appeared map[string]bool
}

// Options configure one aggregation pass.
type Options struct {
	// TeamName distinguishes offense from defense in half-inning headers.
	TeamName string
	// Strict drops balls in play with no location match instead of
	// bucketing them as unknown.
	Strict bool
}

func newRecord() *Record {
	return &Record{
		Team:     stats.NewRecord(),
		Players:  make(map[string]stats.Record),
		Pitchers: make(map[string]*stats.Pitching),
		Appeared: make(map[string]bool),
	}
}

func (r *Record) player(name string) stats.Record {
	rec, ok := r.Players[name]
	if !ok {
		rec = stats.NewRecord()
		r.Players[name] = rec
	}
	return rec
}
