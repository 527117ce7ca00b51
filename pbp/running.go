package pbp

import (
	"regexp"
	"strings"

	"github.com/benchcoach/dugout/roster"
	"github.com/benchcoach/dugout/stats"
)

// RunningEvent is a resolved stolen-base family event on one line.
type RunningEvent struct {
	Runner string
	// Family is one of the running-event family keys (SB, CS, DI, PO, POCS).
	Family string
	// Base is the captured destination-base suffix, or empty.
	Base string
	// Key is the stat key to increment: the family joined with the base
	// suffix when one was captured.
	Key string
}

type runningDatum struct {
	family string
	regex  *regexp.Regexp
}

const baseGroup = `(2nd|second|3rd|third|home)`

// runningRegexes is evaluated in order per line. The pickoff/caught-stealing
// combination must come before pickoff alone, which must come before caught
// stealing alone: a "picked off, caught stealing 3rd" line matches all three.
var runningRegexes []runningDatum

func init() {
	runningRegexes = []runningDatum{
		{stats.StolenBase, regexp.MustCompile(`(?:steals|stole|stolen)\b(?:\s+base)?(?:\s+` + baseGroup + `)?(?:\s+base)?`)},
		{stats.PickoffCaughtStealing, regexp.MustCompile(`pick(?:ed)?[ -]?off\b.{0,40}?caught stealing(?:\s+` + baseGroup + `)?`)},
		{stats.Pickoff, regexp.MustCompile(`pick(?:ed)?[ -]?off\b(?:\s+(?:at\s+)?` + baseGroup + `)?`)},
		{stats.CaughtStealing, regexp.MustCompile(`caught stealing(?:\s+` + baseGroup + `)?`)},
		{stats.DefensiveIndifference, regexp.MustCompile(`(?:advances?|goes)\s+to\s+` + baseGroup + `[^.]{0,40}?defensive indifference`)},
		{stats.DefensiveIndifference, regexp.MustCompile(`defensive indifference[^.]{0,40}?\bto\s+` + baseGroup)},
		{stats.DefensiveIndifference, regexp.MustCompile(`defensive indifference`)},
	}
}

var baseSuffix = map[string]string{
	"2nd":    stats.BaseSecond,
	"second": stats.BaseSecond,
	"3rd":    stats.BaseThird,
	"third":  stats.BaseThird,
	"home":   stats.BaseHome,
}

var parentheticalRe = regexp.MustCompile(`\(([^)]*)\)`)

// ParseRunningEvent detects a running event on the line and resolves the
// runner against the roster. An event whose runner cannot be resolved is
// dropped: nothing is ever attributed to an unidentified runner.
func ParseRunningEvent(line string, ros *roster.Roster) (*RunningEvent, bool) {
	lower := strings.ToLower(line)
	for _, datum := range runningRegexes {
		loc := datum.regex.FindStringSubmatchIndex(lower)
		if loc == nil {
			continue
		}
		base := ""
		if len(loc) > 2 && loc[2] >= 0 {
			base = baseSuffix[lower[loc[2]:loc[3]]]
		}
		runner, ok := resolveRunner(line, loc[0], ros)
		if !ok {
			return nil, false
		}
		return &RunningEvent{
			Runner: runner,
			Family: datum.family,
			Base:   base,
			Key:    stats.RunningKey(datum.family, base),
		}, true
	}
	return nil, false
}

// resolveRunner tries the text immediately before the matched phrase (after
// the last comma), then retries against any parenthetical content in the
// line.
func resolveRunner(line string, matchStart int, ros *roster.Roster) (string, bool) {
	prefix := line[:matchStart]
	if idx := strings.LastIndex(prefix, ","); idx >= 0 {
		prefix = prefix[idx+1:]
	}
	if name, ok := ros.Resolve(prefix); ok {
		return name, true
	}
	for _, m := range parentheticalRe.FindAllStringSubmatch(line, -1) {
		if name, ok := ros.Resolve(m[1]); ok {
			return name, true
		}
	}
	return "", false
}
