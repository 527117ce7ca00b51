package pbp

import "github.com/benchcoach/dugout/stats"

// The phrase tables below are ordered rule libraries: each is evaluated top
// to bottom against a lowercased line and the first hit wins. Keep the order;
// several entries only behave correctly because something above them matched
// first (e.g. "sac fly" must outrank the generic fly-ball family).

// exclusionPhrases knock a line out of ball-in-play consideration entirely.
// Running events are excluded here too; the running-event parser sees every
// line regardless.
var exclusionPhrases = []string{
	"hit by pitch",
	"hit by the pitch",
	"walks",
	"walked",
	"ball four",
	"intentional walk",
	"strikes out",
	"struck out",
	"strikeout",
	"called out on strikes",
	"catcher's interference",
	"catchers interference",
	"catcher interference",
	"steals",
	"stole",
	"caught stealing",
	"defensive indifference",
	"picked off",
	"pickoff",
	"pick off",
}

// inclusionPhrases positively mark a ball in play.
var inclusionPhrases = []string{
	"grounds",
	"grounder",
	"ground ball",
	"flies",
	"flys",
	"fly ball",
	"lines",
	"line drive",
	"liner",
	"pops",
	"popup",
	"pop up",
	"pop fly",
	"bunt",
	"sacrifice fly",
	"sac fly",
	"reaches on an error",
	"reaches on error",
	"reached on an error",
	"error by",
	"fielder's choice",
	"fielders choice",
	"double play",
	"triple play",
	"out at",
}

// typeRule maps a contact phrase to a batted-ball type. Evaluated in order;
// precedence is bunt, then sac fly, then line drives (bucketed as FB), then
// the ground-ball family, then the fly-ball family.
type typeRule struct {
	phrase     string
	battedType string
}

var typeRules = []typeRule{
	{"bunt", stats.GroundBall},
	{"sacrifice fly", stats.FlyBall},
	{"sac fly", stats.FlyBall},
	{"line drive", stats.FlyBall},
	{"lines out", stats.FlyBall},
	{"lines to", stats.FlyBall},
	{"liner", stats.FlyBall},
	{"grounds", stats.GroundBall},
	{"grounder", stats.GroundBall},
	{"ground ball", stats.GroundBall},
	{"chopper", stats.GroundBall},
	{"bouncer", stats.GroundBall},
	{"dribbler", stats.GroundBall},
	{"slow roller", stats.GroundBall},
	{"roller", stats.GroundBall},
	{"tapper", stats.GroundBall},
	{"flies", stats.FlyBall},
	{"flys", stats.FlyBall},
	{"fly ball", stats.FlyBall},
	{"pops", stats.FlyBall},
	{"popup", stats.FlyBall},
	{"pop up", stats.FlyBall},
	{"pop fly", stats.FlyBall},
	{"blooper", stats.FlyBall},
	{"bloop", stats.FlyBall},
	{"flare", stats.FlyBall},
	{"lofted", stats.FlyBall},
	{"lofts", stats.FlyBall},
	{"skies", stats.FlyBall},
}

// sacBuntPhrases route to the SACBUNT bucket before any location scan.
var sacBuntPhrases = []string{
	"sacrifice bunt",
	"sac bunt",
	"sacrifice hit",
}

// locationFamily groups the spellings of one fielded location.
type locationFamily struct {
	location string
	phrases  []string
}

// locationFamilies are scanned for every phrase; the match with the smallest
// character offset in the line wins, table order breaking exact ties.
var locationFamilies = []locationFamily{
	{stats.LeftField, []string{"left field", "leftfield", "left fielder", "to left"}},
	{stats.CenterField, []string{"center field", "centerfield", "center fielder", "to center", "to deep center"}},
	{stats.RightField, []string{"right field", "rightfield", "right fielder", "to right"}},
	{stats.Shortstop, []string{"shortstop", "short stop", "to short"}},
	{stats.SecondBase, []string{"second base", "second baseman"}},
	{stats.ThirdBase, []string{"third base", "third baseman"}},
	{stats.FirstBase, []string{"first base", "first baseman"}},
	{stats.PitcherPos, []string{"pitcher", "back to the mound", "to the mound"}},
}

// fallbackFamilies apply only in non-strict mode, after every positional
// family missed. "Through the left side" is close enough to the shortstop
// hole to bucket there; same idea on the right side.
var fallbackFamilies = []locationFamily{
	{stats.Shortstop, []string{"through the left side", "up the left side", "toward the left side", "left side"}},
	{stats.SecondBase, []string{"through the right side", "up the right side", "toward the right side", "right side"}},
}

// bareLocationMarkers support the inclusion fallback: a line that mentions a
// fielder without any contact verb still reads as a ball in play.
func bareLocationMarkers() []string {
	var out []string
	for _, fam := range locationFamilies {
		out = append(out, fam.phrases...)
	}
	return out
}
