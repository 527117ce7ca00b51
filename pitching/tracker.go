// Package pitching attributes outs, pitches, strikeouts and walks to the
// correct pitcher across half-innings.
//
// Transcripts routinely print a half-inning's first outs or pitch counts
// before the line that names the pitcher. Attributing those immediately
// would misassign them; dropping them would lose innings. The tracker
// therefore buffers everything that arrives while the active pitcher is
// unknown and flushes the buffer on the transition that names them. A
// half-inning that ends with the pitcher still unknown flushes to the
// unknown-pitcher sentinel instead, so totals never leak across
// half-innings.
package pitching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/stats"
)

const terminalOuts = 3

var (
	halfInningRe = regexp.MustCompile(`(?i)^(top|bottom)\b\s*(?:of\s+)?(?:the\s+)?(\d+)(?:st|nd|rd|th)?\b(.*)`)
	pitchingRe   = regexp.MustCompile(`(?i)^(.{1,40}?)\s+(?:pitching\b|in for (?:the )?pitcher)`)
	outsRe       = regexp.MustCompile(`(?i)\b([0-3])\s+outs?\b`)
	pitchCountRe = regexp.MustCompile(`(?i)\b(\d+)\s+pitch(?:es)?\b(?:\s*,\s*(\d+)\s+strikes?)?`)
	strikeoutRe  = regexp.MustCompile(`(?i)strikes out|struck out|called out on strikes`)
	walkRe       = regexp.MustCompile(`(?i)\bwalks\b|\bwalked\b|\bball four\b`)
	hbpRe        = regexp.MustCompile(`(?i)hit by (?:the )?pitch`)
)

// Tracker folds transcript lines into per-pitcher records for one team's
// defense. It is created fresh per game.
type Tracker struct {
	teamTokens []string
	ros        *roster.Roster

	records map[string]*stats.Pitching

	active       string // empty while the pitcher is unknown
	defenseOurs  bool
	defenseKnown bool
	lastOuts     int
	pend         stats.Pitching
}

// NewTracker returns a tracker for the configured team name. Pitcher names
// on lines are resolved against the roster when possible.
func NewTracker(teamName string, ros *roster.Roster) *Tracker {
	return &Tracker{
		teamTokens: nameTokens(teamName),
		ros:        ros,
		records:    make(map[string]*stats.Pitching),
	}
}

func nameTokens(s string) []string {
	var out []string
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		if len(tok) > 2 {
			out = append(out, tok)
		}
	}
	return out
}

// ProcessLine feeds the tracker one normalized line. rest holds the lines
// that follow it, used only to infer which team is batting when a
// half-inning header doesn't say.
func (t *Tracker) ProcessLine(line string, rest []string) {
	if m := halfInningRe.FindStringSubmatch(line); m != nil {
		t.startHalfInning(m[3], rest)
		return
	}
	if !t.defenseOurs {
		return
	}
	if m := pitchingRe.FindStringSubmatch(line); m != nil {
		t.setActivePitcher(m[1])
		return
	}
	if m := outsRe.FindStringSubmatch(line); m != nil {
		outs := int(m[1][0] - '0')
		if delta := outs - t.lastOuts; delta > 0 {
			t.route(func(p *stats.Pitching) { p.Outs += delta })
		}
		if outs > t.lastOuts {
			t.lastOuts = outs
		}
		if t.lastOuts >= terminalOuts {
			t.flushToUnknown()
		}
	}
	if m := pitchCountRe.FindStringSubmatch(line); m != nil {
		pitches, _ := strconv.Atoi(m[1])
		strikes := 0
		if m[2] != "" {
			strikes, _ = strconv.Atoi(m[2])
		}
		t.route(func(p *stats.Pitching) {
			p.Pitches += pitches
			p.Strikes += strikes
		})
	}
	switch {
	case strikeoutRe.MatchString(line):
		t.route(func(p *stats.Pitching) { p.Strikeouts++ })
	case walkRe.MatchString(line):
		t.route(func(p *stats.Pitching) { p.Walks++ })
	case hbpRe.MatchString(line):
		t.route(func(p *stats.Pitching) { p.HitBatters++ })
	}
}

// Finish closes out the transcript, flushing anything still pending.
func (t *Tracker) Finish() {
	if t.defenseOurs {
		t.flushToUnknown()
	}
}

// Records returns the accumulated per-pitcher records.
func (t *Tracker) Records() map[string]*stats.Pitching {
	return t.records
}

// startHalfInning handles a header line. Whatever is pending belongs to the
// half-inning that just ended; it goes to the unknown-pitcher sentinel
// rather than being carried forward or discarded.
func (t *Tracker) startHalfInning(remainder string, rest []string) {
	if t.defenseOurs {
		t.flushToUnknown()
	}
	t.active = ""
	t.pend = stats.Pitching{}
	t.lastOuts = 0
	t.defenseOurs, t.defenseKnown = t.classifyDefense(remainder)
	if !t.defenseKnown {
		t.defenseOurs = t.inferDefense(rest)
	}
	log.Debug().Bool("defenseOurs", t.defenseOurs).Str("header", remainder).
		Msg("half-inning")
}

// classifyDefense matches the header's team-name text against the configured
// team. The header names the batting team, so a match means our defense is
// off the field. Only a positive match counts as identification: headers
// often name no team at all ("Bottom of the 1st Inning"), and those fall
// through to the forward scan.
func (t *Tracker) classifyDefense(remainder string) (ours, known bool) {
	lower := strings.ToLower(remainder)
	for _, tok := range t.teamTokens {
		if strings.Contains(lower, tok) {
			return false, true // our team batting
		}
	}
	return false, false
}

// inferDefense scans forward to the next header. If a roster player leads
// any line, our team is batting and the defense is theirs. Pitcher lines
// are skipped: our pitcher is a roster name but not a batter.
func (t *Tracker) inferDefense(rest []string) bool {
	for _, line := range rest {
		if halfInningRe.MatchString(line) {
			break
		}
		if pitchingRe.MatchString(line) {
			continue
		}
		if _, ok := t.ros.Resolve(line); ok {
			return false
		}
	}
	return true
}

// setActivePitcher names the pitcher and flushes anything buffered while
// they were unknown.
func (t *Tracker) setActivePitcher(raw string) {
	name := strings.Trim(strings.TrimSpace(raw), ".,-")
	if resolved, ok := t.ros.Resolve(name); ok {
		name = resolved
	}
	if name == "" {
		return
	}
	t.active = name
	rec := t.record(name)
	rec.Add(&t.pend)
	t.pend = stats.Pitching{}
	log.Debug().Str("pitcher", name).Msg("active pitcher set")
}

// route applies an update to the active pitcher's record, or to the pending
// buffer when the pitcher is still unknown.
func (t *Tracker) route(update func(*stats.Pitching)) {
	if t.active != "" {
		update(t.record(t.active))
		return
	}
	update(&t.pend)
}

func (t *Tracker) flushToUnknown() {
	if t.active != "" || t.pend.Empty() {
		t.pend = stats.Pitching{}
		return
	}
	t.record(stats.UnknownPitcher).Add(&t.pend)
	t.pend = stats.Pitching{}
}

func (t *Tracker) record(name string) *stats.Pitching {
	rec, ok := t.records[name]
	if !ok {
		rec = &stats.Pitching{}
		t.records[name] = rec
	}
	return rec
}
