// Package roster holds the active player set and resolves free-form name
// references from transcript lines against it.
package roster

import (
	"errors"
	"strings"
)

var ErrEmptyRoster = errors.New("roster has no players")

// Roster is the caller-supplied set of player display names. Names are
// compared case- and punctuation-insensitively; the engine never synthesizes
// an entry that wasn't supplied.
type Roster struct {
	names  []string
	byNorm map[string]string
	byLast map[string][]string
}

// New builds a roster from display names, normalizing at the boundary.
// Duplicate names collapse to one entry.
func New(names []string) (*Roster, error) {
	r := &Roster{
		byNorm: make(map[string]string),
		byLast: make(map[string][]string),
	}
	for _, name := range names {
		display := strings.Join(strings.Fields(name), " ")
		if display == "" {
			continue
		}
		norm := normalizeName(display)
		if _, seen := r.byNorm[norm]; seen {
			continue
		}
		r.names = append(r.names, display)
		r.byNorm[norm] = display
		toks := strings.Fields(norm)
		last := toks[len(toks)-1]
		r.byLast[last] = append(r.byLast[last], display)
	}
	if len(r.names) == 0 {
		return nil, ErrEmptyRoster
	}
	return r, nil
}

// Names returns the display names in insertion order.
func (r *Roster) Names() []string {
	return r.names
}

func (r *Roster) Len() int {
	return len(r.names)
}

// Contains reports whether the exact display name (after normalization) is
// on the roster.
func (r *Roster) Contains(name string) bool {
	_, ok := r.byNorm[normalizeName(name)]
	return ok
}

// normalizeName lowercases and strips the punctuation that scoring apps
// sprinkle into names (periods after initials, commas, apostrophes).
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case '.', ',', '\'', '#':
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
