package game

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/benchcoach/dugout/pbp"
	"github.com/benchcoach/dugout/pitching"
	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/stats"
)

var (
	subLineRe         = regexp.MustCompile(`(?i)substitution|lineup change|\bin at\b|pinch hit|pinch run`)
	courtesyRunnerRe  = regexp.MustCompile(`(?i)courtesy runner`)
	plateAppearanceRe = regexp.MustCompile(`(?i)walks|walked|strikes out|struck out|hit by (?:the )?pitch|singles|doubles|triples|homers|home run`)
)

// Aggregate makes a single left-to-right pass over the transcript's lines
// and accumulates one game's Record. Every line is inspected by the
// running-event parser and the pitching tracker; lines classified as balls
// in play with a resolvable batter feed the location/type tallies.
func Aggregate(transcript string, ros *roster.Roster, opts Options) (*Record, error) {
	if ros == nil || ros.Len() == 0 {
		return nil, roster.ErrEmptyRoster
	}
	lines := pbp.NormalizeLines(transcript)
	if len(lines) == 0 {
		return nil, ErrEmptyTranscript
	}

	rec := newRecord()
	tracker := pitching.NewTracker(opts.TeamName, ros)

	for i, line := range lines {
		tracker.ProcessLine(line, lines[i+1:])

		if ev, ok := pbp.ParseRunningEvent(line, ros); ok {
			recordRunningEvent(rec, ev)
			rec.Appeared[ev.Runner] = true
			// One line can carry both a plate appearance and a running
			// event ("J Smith walks, R Cruz steals 2nd"); the batter
			// still gets their appearance.
			creditAppearance(rec, line, ros)
			continue
		}

		contact := pbp.Classify(line, opts.Strict)
		if contact.BallInPlay {
			if batter, ok := ros.Resolve(line); ok {
				recordContact(rec, batter, contact)
				rec.Appeared[batter] = true
			}
			continue
		}

		creditAppearance(rec, line, ros)
	}
	tracker.Finish()
	for name, p := range tracker.Records() {
		rec.Pitchers[name] = p
	}

	log.Debug().Int("lines", len(lines)).Int("players", len(rec.Players)).
		Int("pitchers", len(rec.Pitchers)).Msg("aggregated game")
	return rec, nil
}

func recordRunningEvent(rec *Record, ev *pbp.RunningEvent) {
	player := rec.player(ev.Runner)
	rec.Team.Incr(ev.Family)
	player.Incr(ev.Family)
	if ev.Base != "" {
		rec.Team.Incr(ev.Key)
		player.Incr(ev.Key)
	}
}

// recordContact applies the recording rule. Every ball in play lands in
// exactly one of the location-family buckets; the bunt, sac-bunt and
// unknown buckets stand alone, while a positional location also counts the
// batted-ball type and the type-location combination. Keeping the buckets
// disjoint is what makes the team conservation check
// (GB+FB+BUNT+SACBUNT+UNK == balls in play) hold.
func recordContact(rec *Record, batter string, contact pbp.Contact) {
	if contact.Location == "" {
		// Strict mode with no location match: dropped from tallies.
		return
	}
	player := rec.player(batter)
	rec.Team.Incr(contact.Location)
	player.Incr(contact.Location)
	switch contact.Location {
	case stats.UnknownLocation, stats.Bunt, stats.SacBunt:
		return
	}
	if contact.Type == "" {
		return
	}
	rec.Team.Incr(contact.Type)
	player.Incr(contact.Type)
	combo := stats.ComboKey(contact.Type, contact.Location)
	rec.Team.Incr(combo)
	player.Incr(combo)
}

// creditAppearance credits games-played for non-BIP lines: plate-appearance
// markers and substitution/lineup-change lines that name a roster player.
// Courtesy-runner mentions never credit an appearance.
func creditAppearance(rec *Record, line string, ros *roster.Roster) {
	if courtesyRunnerRe.MatchString(line) {
		return
	}
	if plateAppearanceRe.MatchString(line) {
		if name, ok := ros.Resolve(line); ok {
			rec.Appeared[name] = true
		}
		return
	}
	if subLineRe.MatchString(line) {
		// Substitution lines usually lead with a label ("Offensive
		// Substitution: ..."); the name follows the colon.
		candidate := line
		if idx := strings.Index(line, ":"); idx >= 0 {
			candidate = line[idx+1:]
		}
		if name, ok := ros.Resolve(candidate); ok {
			rec.Appeared[name] = true
		}
	}
}
