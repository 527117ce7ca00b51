// Package store persists season states to a local SQLite database. It is a
// host-side collaborator: the engine packages never touch it.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/benchcoach/dugout/season"
)

const schema = `
CREATE TABLE IF NOT EXISTS seasons (
	team TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the season database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open season db: %w", err)
	}
	// The driver is cgo-free but still wants a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// LoadSeason returns the stored season state for a team, or a fresh empty
// state if none has been saved yet. Loaded states are normalized so records
// written by older versions with fewer stat keys behave correctly.
func (s *Store) LoadSeason(team string) (*season.State, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT data FROM seasons WHERE team = ?`, team).Scan(&blob)
	if err == sql.ErrNoRows {
		log.Debug().Str("team", team).Msg("no stored season; starting fresh")
		return season.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load season for %q: %w", team, err)
	}
	st := season.NewState()
	if err := json.Unmarshal(blob, st); err != nil {
		return nil, fmt.Errorf("decode season for %q: %w", team, err)
	}
	st.Normalize()
	return st, nil
}

// SaveSeason writes the full season state for a team, retrying briefly if
// the database is busy.
func (s *Store) SaveSeason(team string, st *season.State) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode season for %q: %w", team, err)
	}
	return retry.Do(
		func() error {
			_, err := s.db.Exec(
				`INSERT INTO seasons (team, data, updated_at) VALUES (?, ?, ?)
				 ON CONFLICT(team) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
				team, blob, time.Now().UnixNano())
			return err
		},
		retry.Attempts(5),
		retry.Delay(50*time.Millisecond),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Uint("attempt", n).Err(err).Msg("season save retry")
		}),
	)
}
