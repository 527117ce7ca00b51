package pbp

import (
	"fmt"
	"strings"

	"github.com/benchcoach/dugout/stats"
)

// Contact is the classification of a single transcript line.
type Contact struct {
	BallInPlay bool
	// Type is GB, FB, or empty when undetermined.
	Type string
	// Location is a location key (including the BUNT/SACBUNT/UNK buckets),
	// or empty when undetermined in strict mode.
	Location string
	// Rationale records which rules fired, for diagnostics only.
	Rationale []string
}

// Classify decides whether a line is a ball in play and, if so, its
// batted-ball type and fielded location. strict controls the fallback
// behavior when no positional phrase matches: strict drops the location
// (and the line from location/type tallies), non-strict tries the
// directional fallbacks and finally buckets as unknown.
func Classify(line string, strict bool) Contact {
	c := Contact{}
	lower := strings.ToLower(line)

	for _, phrase := range exclusionPhrases {
		if strings.Contains(lower, phrase) {
			c.Rationale = append(c.Rationale, "excluded: "+phrase)
			return c
		}
	}

	for _, phrase := range inclusionPhrases {
		if strings.Contains(lower, phrase) {
			c.BallInPlay = true
			c.Rationale = append(c.Rationale, "included: "+phrase)
			break
		}
	}
	if !c.BallInPlay {
		// A bare fielder mention still reads as a ball in play.
		for _, marker := range bareLocationMarkers() {
			if strings.Contains(lower, marker) {
				c.BallInPlay = true
				c.Rationale = append(c.Rationale, "included by location marker: "+marker)
				break
			}
		}
	}
	if !c.BallInPlay {
		return c
	}

	for _, rule := range typeRules {
		if strings.Contains(lower, rule.phrase) {
			c.Type = rule.battedType
			c.Rationale = append(c.Rationale, fmt.Sprintf("type %s: %q", rule.battedType, rule.phrase))
			break
		}
	}

	c.Location = classifyLocation(lower, strict, &c.Rationale)

	// Inference bridge: a determined location with no contact verb still
	// tells us the likely trajectory.
	if c.Type == "" && c.Location != "" && c.Location != stats.UnknownLocation {
		if stats.OutfieldLocations[c.Location] {
			c.Type = stats.FlyBall
		} else {
			c.Type = stats.GroundBall
		}
		c.Rationale = append(c.Rationale, "type inferred from location "+c.Location)
	}
	return c
}

func classifyLocation(lower string, strict bool, rationale *[]string) string {
	for _, phrase := range sacBuntPhrases {
		if strings.Contains(lower, phrase) {
			*rationale = append(*rationale, "sac bunt: "+phrase)
			return stats.SacBunt
		}
	}
	if strings.Contains(lower, "bunt") {
		*rationale = append(*rationale, "bunt")
		return stats.Bunt
	}

	if loc, phrase, ok := earliestLocation(lower, locationFamilies); ok {
		*rationale = append(*rationale, fmt.Sprintf("location %s: %q", loc, phrase))
		return loc
	}

	if strict {
		*rationale = append(*rationale, "no location match (strict)")
		return ""
	}
	if loc, phrase, ok := earliestLocation(lower, fallbackFamilies); ok {
		*rationale = append(*rationale, fmt.Sprintf("approximate location %s: %q", loc, phrase))
		return loc
	}
	*rationale = append(*rationale, "no location match; bucketing as unknown")
	return stats.UnknownLocation
}

// earliestLocation scans every phrase of every family and returns the
// location whose phrase occurs earliest in the line. The first-mentioned
// fielder wins ties by table order.
func earliestLocation(lower string, families []locationFamily) (string, string, bool) {
	bestIdx := -1
	bestLoc, bestPhrase := "", ""
	for _, fam := range families {
		for _, phrase := range fam.phrases {
			idx := strings.Index(lower, phrase)
			if idx < 0 {
				continue
			}
			if bestIdx == -1 || idx < bestIdx {
				bestIdx = idx
				bestLoc = fam.location
				bestPhrase = phrase
			}
		}
	}
	if bestIdx == -1 {
		return "", "", false
	}
	return bestLoc, bestPhrase, true
}
