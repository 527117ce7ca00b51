// Package stats defines the stat key vocabulary and the counting records
// that the rest of the engine accumulates into.
package stats

// Fielded-location keys. These match the column/cell names used by the
// reporting surfaces, so don't rename them casually.
const (
	LeftField   = "LF"
	CenterField = "CF"
	RightField  = "RF"
	Shortstop   = "SS"
	SecondBase  = "2B"
	ThirdBase   = "3B"
	FirstBase   = "1B"
	PitcherPos  = "P"

	// UnknownLocation buckets balls in play whose fielder could not be
	// determined (non-strict mode only).
	UnknownLocation = "UNK"

	// Bunt and SacBunt are contact buckets, not field locations; they never
	// participate in combination keys.
	Bunt    = "BUNT"
	SacBunt = "SACBUNT"
)

// Batted-ball type keys. Line drives are bucketed as fly balls.
const (
	GroundBall = "GB"
	FlyBall    = "FB"
)

// Running-event family keys.
const (
	StolenBase            = "SB"
	CaughtStealing        = "CS"
	DefensiveIndifference = "DI"
	Pickoff               = "PO"
	PickoffCaughtStealing = "POCS"
)

// Destination-base suffixes for running-event sub-buckets.
const (
	BaseSecond = "2B"
	BaseThird  = "3B"
	BaseHome   = "H"
)

// GamesPlayed is a per-player key, credited at most once per merged game.
const GamesPlayed = "GP"

// UnknownPitcher is the sentinel pitching records fall back to when a
// half-inning ends before the active pitcher's name is seen.
const UnknownPitcher = "Unknown Pitcher"

// FieldLocations are the positional locations, in scan order. UNK, BUNT and
// SACBUNT are deliberately absent: they are buckets, not positions.
var FieldLocations = []string{
	LeftField, CenterField, RightField,
	Shortstop, SecondBase, ThirdBase, FirstBase, PitcherPos,
}

// OutfieldLocations are the locations whose untyped contact is inferred to be
// a fly ball; every other determined location infers a ground ball.
var OutfieldLocations = map[string]bool{
	LeftField:   true,
	CenterField: true,
	RightField:  true,
}

var LocationKeys = append(append([]string{}, FieldLocations...),
	UnknownLocation, Bunt, SacBunt)

var TypeKeys = []string{GroundBall, FlyBall}

var RunningFamilies = []string{
	StolenBase, CaughtStealing, DefensiveIndifference, Pickoff, PickoffCaughtStealing,
}

var baseSuffixes = []string{BaseSecond, BaseThird, BaseHome}

// ComboKey joins a batted-ball type with a positional location, e.g. "GB-SS".
func ComboKey(battedType, location string) string {
	return battedType + "-" + location
}

// RunningKey joins a running-event family with a destination base, or returns
// the bare family key when no base was captured.
func RunningKey(family, base string) string {
	if base == "" {
		return family
	}
	return family + "-" + base
}

// AllKeys is the complete recognized key set. Records are always fully keyed
// over this set so that totals saved by older versions, which had fewer keys,
// load cleanly.
var AllKeys []string

func init() {
	AllKeys = append(AllKeys, LocationKeys...)
	AllKeys = append(AllKeys, TypeKeys...)
	for _, t := range TypeKeys {
		for _, loc := range FieldLocations {
			AllKeys = append(AllKeys, ComboKey(t, loc))
		}
	}
	for _, fam := range RunningFamilies {
		AllKeys = append(AllKeys, fam)
		for _, b := range baseSuffixes {
			AllKeys = append(AllKeys, RunningKey(fam, b))
		}
	}
	AllKeys = append(AllKeys, GamesPlayed)
}
