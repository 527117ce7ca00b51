package roster

import (
	"regexp"
	"strings"
)

// Tokens that can never begin a player reference. Transcript lines open with
// these when they describe innings, counts, or game events rather than a
// batter or runner.
var nonNameTokens = map[string]bool{
	"top": true, "bottom": true, "inning": true, "end": true, "middle": true,
	"ball": true, "balls": true, "strike": true, "strikes": true,
	"foul": true, "pitch": true, "pitches": true, "pitching": true,
	"out": true, "outs": true, "walk": true, "walks": true,
	"steal": true, "steals": true, "stole": true, "caught": true,
	"picked": true, "pickoff": true, "wild": true, "passed": true,
	"defensive": true, "offensive": true, "courtesy": true,
	"lineup": true, "substitution": true, "in": true, "now": true,
	"first": true, "second": true, "third": true, "home": true,
	"1st": true, "2nd": true, "3rd": true, "4th": true, "5th": true,
	"6th": true, "7th": true, "8th": true, "9th": true,
}

var asideRe = regexp.MustCompile(`\(.*?\)|\[.*?\]`)
var numericRe = regexp.MustCompile(`^\d+$`)

// Resolve maps a text fragment to the single roster player it refers to.
//
// The fragment's bracketed asides are stripped first. A two-token prefix
// that exactly matches a roster entry wins; failing that, a first token that
// matches exactly one roster entry's surname wins. Ambiguous surnames
// (several players sharing one) intentionally resolve to nothing rather
// than guessing.
func (r *Roster) Resolve(fragment string) (string, bool) {
	cleaned := asideRe.ReplaceAllString(fragment, " ")
	toks := strings.Fields(normalizeName(cleaned))
	if len(toks) == 0 {
		return "", false
	}
	if nonNameTokens[toks[0]] || numericRe.MatchString(toks[0]) {
		return "", false
	}
	if len(toks) >= 2 {
		if display, ok := r.byNorm[toks[0]+" "+toks[1]]; ok {
			return display, true
		}
	}
	if matches := r.byLast[toks[0]]; len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}
