// Package shell implements the interactive coach shell: load a roster,
// paste in game transcripts, inspect season tables.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/benchcoach/dugout/cache"
	"github.com/benchcoach/dugout/config"
	"github.com/benchcoach/dugout/game"
	"github.com/benchcoach/dugout/pbp"
	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/season"
	"github.com/benchcoach/dugout/store"
)

// seasonStore is the persistence surface the shell needs; *store.Store
// satisfies it.
type seasonStore interface {
	LoadSeason(team string) (*season.State, error)
	SaveSeason(team string, st *season.State) error
	Close() error
}

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	st  seasonStore
	ros *roster.Roster

	lastGame *game.Record
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mdugout>\033[0m ",
		HistoryFile:     "/tmp/dugout_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{l: l, cfg: cfg}
	st, err := store.Open(cfg.GetString("db-path"))
	if err != nil {
		panic(err)
	}
	sc.st = st
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

// rosterFile is the on-disk roster format.
type rosterFile struct {
	Team    string   `yaml:"team"`
	Players []string `yaml:"players"`
}

func (sc *ShellController) loadRoster(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var rf rosterFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return err
	}
	ros, err := roster.New(rf.Players)
	if err != nil {
		return err
	}
	sc.ros = ros
	if rf.Team != "" {
		sc.cfg.Set("team-name", rf.Team)
	}
	sc.showMessage(fmt.Sprintf("Loaded %d players for %s.", ros.Len(), sc.cfg.GetString("team-name")))
	return nil
}

func (sc *ShellController) ingest(path string) error {
	if sc.ros == nil {
		return errors.New("load a roster first")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	transcript, err := pbp.ReadTranscript(f)
	if err != nil {
		return err
	}

	team := sc.cfg.GetString("team-name")
	sess, err := cache.Acquire(team, sc.st.LoadSeason)
	if err != nil {
		return err
	}
	sess.Lock()
	defer sess.Unlock()

	rec, hash, err := season.Process(sess.State, transcript, sc.ros, game.Options{
		TeamName: team,
		Strict:   sc.cfg.GetBool("strict"),
	})
	if err != nil {
		return err
	}
	if err := sc.st.SaveSeason(team, sess.State); err != nil {
		// The in-memory merge has the hash marked but the store never saw
		// it; drop the session so the next ingest reloads saved state and
		// the game can be retried.
		cache.Evict(team)
		log.Error().Err(err).Str("team", team).Msg("season save failed; discarding cached state")
		return err
	}
	sc.lastGame = rec
	sc.showMessage(fmt.Sprintf("Merged game %s. Season now covers %d game(s).",
		hash, sess.State.GamesPlayed))
	return nil
}

func (sc *ShellController) currentState() (*season.State, error) {
	if sc.ros == nil {
		return nil, errors.New("load a roster first")
	}
	sess, err := cache.Acquire(sc.cfg.GetString("team-name"), sc.st.LoadSeason)
	if err != nil {
		return nil, err
	}
	return sess.State, nil
}

func (sc *ShellController) commandSwitch(line string, sig chan os.Signal) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		sc.showError(err)
		return nil
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "roster":
		if len(args) != 1 {
			sc.showMessage("Usage: roster <file.yaml>")
			break
		}
		if err := sc.loadRoster(args[0]); err != nil {
			sc.showError(err)
		}

	case "ingest":
		if len(args) != 1 {
			sc.showMessage("Usage: ingest <transcript file>")
			break
		}
		if err := sc.ingest(args[0]); err != nil {
			sc.showError(err)
		}

	case "team":
		st, err := sc.currentState()
		if err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage(teamTable(st))

	case "player":
		if len(args) != 1 {
			sc.showMessage(`Usage: player "<name>"`)
			break
		}
		st, err := sc.currentState()
		if err != nil {
			sc.showError(err)
			break
		}
		out, err := playerTable(st, args[0])
		if err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage(out)

	case "last":
		if sc.lastGame == nil {
			sc.showMessage("No game ingested this session.")
			break
		}
		sc.showMessage(gameSummary(sc.lastGame))

	case "pitching":
		st, err := sc.currentState()
		if err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage(pitchingTable(st))

	case "spray":
		if len(args) != 1 {
			sc.showMessage(`Usage: spray "<name>"`)
			break
		}
		st, err := sc.currentState()
		if err != nil {
			sc.showError(err)
			break
		}
		out, err := sprayHistogram(st, args[0])
		if err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage(out)

	case "strict":
		if len(args) == 1 {
			sc.cfg.Set("strict", args[0] == "on")
		}
		sc.showMessage(fmt.Sprintf("strict mode: %v", sc.cfg.GetBool("strict")))

	case "help":
		sc.showMessage(helpText)

	case "exit", "quit":
		sig <- syscall.SIGINT

	default:
		sc.showMessage(fmt.Sprintf("Unknown command %q; try 'help'.", cmd))
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	defer sc.st.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sc.commandSwitch(line, sig); err != nil {
			log.Error().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}
