// Package pbp turns raw play-by-play transcript text into per-line
// classifications: whether a line is a ball in play, what kind of contact it
// was and where it was fielded, and whether it carries a running event.
package pbp

import "strings"

// NormalizeLines splits a raw transcript into cleaned lines: whitespace runs
// collapsed, surrounding space trimmed, blank lines dropped. Case is
// preserved; matchers lowercase on their own.
func NormalizeLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Canonical renders a transcript in the form used for content hashing:
// normalized lines joined by single newlines. Two pastes of the same game
// that differ only in spacing or blank lines hash identically.
func Canonical(text string) string {
	return strings.Join(NormalizeLines(text), "\n")
}
