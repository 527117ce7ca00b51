package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/benchcoach/dugout/config"
	"github.com/benchcoach/dugout/game"
	"github.com/benchcoach/dugout/pbp"
	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/season"
	"github.com/benchcoach/dugout/store"
)

// ingest parses every transcript in a directory and merges the results into
// the team's season, in filename order. Parsing fans out across cores;
// merging stays sequential because the season state is a single logical
// resource.

type parsedGame struct {
	path string
	rec  *game.Record
	hash string
}

type rosterFile struct {
	Team    string   `yaml:"team"`
	Players []string `yaml:"players"`
}

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	dataPath := cfg.GetString("data-path")
	ros, team, err := loadRoster(filepath.Join(dataPath, "roster.yaml"), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("roster")
	}
	if team == "" {
		log.Fatal().Msg("no team name configured")
	}

	paths, err := filepath.Glob(filepath.Join(dataPath, "games", "*.txt"))
	if err != nil {
		log.Fatal().Err(err).Msg("glob")
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		log.Warn().Str("dir", filepath.Join(dataPath, "games")).Msg("no transcripts found")
		return
	}

	opts := game.Options{TeamName: team, Strict: cfg.GetBool("strict")}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	parsed := make([]*parsedGame, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			transcript, err := pbp.ReadTranscript(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			rec, err := game.Aggregate(transcript, ros, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			parsed[i] = &parsedGame{path: path, rec: rec, hash: season.Hash(team, transcript)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("aggregation failed; nothing merged")
	}

	st, err := store.Open(cfg.GetString("db-path"))
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer st.Close()

	state, err := st.LoadSeason(team)
	if err != nil {
		log.Fatal().Err(err).Msg("load season")
	}

	merged, skipped := 0, 0
	for _, pg := range parsed {
		if err := state.MergeGame(pg.rec, pg.hash); err != nil {
			if err == season.ErrDuplicateGame {
				log.Info().Str("file", pg.path).Msg("already merged; skipping")
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("file", pg.path).Msg("merge")
		}
		merged++
	}
	state.ReconcileRoster(ros)

	if err := st.SaveSeason(team, state); err != nil {
		log.Fatal().Err(err).Msg("save season")
	}
	log.Info().Int("merged", merged).Int("skipped", skipped).
		Int("gamesPlayed", state.GamesPlayed).Msg("done")
}

func loadRoster(path string, cfg *config.Config) (*roster.Roster, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	var rf rosterFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, "", err
	}
	ros, err := roster.New(rf.Players)
	if err != nil {
		return nil, "", err
	}
	team := rf.Team
	if team == "" {
		team = cfg.GetString("team-name")
	}
	return ros, team, nil
}
