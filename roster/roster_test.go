package roster

import (
	"testing"

	"github.com/matryer/is"
)

func testRoster(t *testing.T, names ...string) *Roster {
	t.Helper()
	r, err := New(names)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNewRejectsEmpty(t *testing.T) {
	is := is.New(t)
	_, err := New(nil)
	is.Equal(err, ErrEmptyRoster)
	_, err = New([]string{"   ", ""})
	is.Equal(err, ErrEmptyRoster)
}

func TestResolveExactTwoTokens(t *testing.T) {
	is := is.New(t)
	r := testRoster(t, "J Smith", "A Jones")
	name, ok := r.Resolve("J Smith grounds out to shortstop.")
	is.True(ok)
	is.Equal(name, "J Smith")
}

func TestResolvePunctuationInsensitive(t *testing.T) {
	is := is.New(t)
	r := testRoster(t, "J. Smith")
	name, ok := r.Resolve("J Smith flies out.")
	is.True(ok)
	is.Equal(name, "J. Smith")
}

func TestResolveUniqueLastName(t *testing.T) {
	is := is.New(t)
	r := testRoster(t, "J Smith", "A Jones")
	name, ok := r.Resolve("Smith steals 2nd.")
	is.True(ok)
	is.Equal(name, "J Smith")
}

// Two players sharing a surname intentionally resolve to nothing. This is a
// known precision limit carried over from the original behavior, not a bug:
// guessing would attribute stats to the wrong player.
func TestResolveAmbiguousSurnameYieldsNothing(t *testing.T) {
	is := is.New(t)
	r := testRoster(t, "J Smith", "K Smith")
	_, ok := r.Resolve("Smith doubles.")
	is.True(!ok)

	// A full reference still works.
	name, ok := r.Resolve("K Smith doubles.")
	is.True(ok)
	is.Equal(name, "K Smith")
}

func TestResolveRejectsNonNameKeywords(t *testing.T) {
	is := is.New(t)
	r := testRoster(t, "T Top", "B Ball")
	for _, frag := range []string{
		"Top of the 3rd",
		"Ball 2",
		"2 outs",
		"In play.",
		"Courtesy runner",
	} {
		_, ok := r.Resolve(frag)
		is.True(!ok)
	}
}

func TestResolveStripsAsides(t *testing.T) {
	is := is.New(t)
	r := testRoster(t, "J Smith")
	name, ok := r.Resolve("J (5) Smith singles")
	is.True(ok)
	is.Equal(name, "J Smith")
}

func TestContains(t *testing.T) {
	is := is.New(t)
	r := testRoster(t, "J. Smith")
	is.True(r.Contains("j smith"))
	is.True(!r.Contains("a jones"))
}
