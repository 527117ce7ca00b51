// Package cache keeps long-lived season states in memory, keyed by team,
// fronting whatever store the host loads them from. Each session carries
// its own lock: the dedup-check-then-merge sequence in the engine is not
// atomic, so process-game calls for one team must be serialized here.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/benchcoach/dugout/season"
)

// LoadFunc fetches a team's season state from the backing store.
type LoadFunc func(team string) (*season.State, error)

// Session is a cached season state plus the lock serializing access to it.
type Session struct {
	mu    sync.Mutex
	Team  string
	State *season.State
}

// Lock takes the session's lock; hold it across the whole
// check-aggregate-merge-save sequence.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

type sessionCache struct {
	sync.Mutex
	sessions map[string]*Session
}

// GlobalSessionCache holds every team's loaded season state for the life of
// the process.
var GlobalSessionCache = &sessionCache{sessions: make(map[string]*Session)}

// Acquire returns the cached session for a team, loading its season state
// on first use. The load runs at most once per team.
func Acquire(team string, load LoadFunc) (*Session, error) {
	c := GlobalSessionCache
	c.Lock()
	defer c.Unlock()
	if sess, ok := c.sessions[team]; ok {
		return sess, nil
	}
	log.Debug().Str("team", team).Msg("loading season state into cache")
	state, err := load(team)
	if err != nil {
		return nil, err
	}
	state.Normalize()
	sess := &Session{Team: team, State: state}
	c.sessions[team] = sess
	return sess, nil
}

// Evict drops a team's cached session, forcing a reload on next use.
func Evict(team string) {
	c := GlobalSessionCache
	c.Lock()
	defer c.Unlock()
	delete(c.sessions, team)
}
