package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/benchcoach/dugout/game"
	"github.com/benchcoach/dugout/season"
	"github.com/benchcoach/dugout/stats"
)

const helpText = `Commands:
  roster <file.yaml>   load the active roster (and team name, if present)
  ingest <file>        parse one game transcript and merge it into the season
  team                 season team totals
  player "<name>"      one player's scouting summary
  last                 totals for the last game ingested this session
  pitching             per-pitcher season totals
  spray "<name>"       ascii spray distribution for a player
  strict [on|off]      toggle strict location classification
  help                 this message
  exit                 leave the shell`

func teamTable(st *season.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Games played: %d\n", st.GamesPlayed)
	fmt.Fprintf(&b, "Balls in play: %d (GB %d / FB %d / bunt %d / sac bunt %d / unknown %d)\n",
		st.Team.BallsInPlay(), st.Team[stats.GroundBall], st.Team[stats.FlyBall],
		st.Team[stats.Bunt], st.Team[stats.SacBunt], st.Team[stats.UnknownLocation])
	b.WriteString("Location      GB   FB\n")
	for _, loc := range stats.FieldLocations {
		fmt.Fprintf(&b, "%-10s %4d %4d\n", loc,
			st.Team[stats.ComboKey(stats.GroundBall, loc)],
			st.Team[stats.ComboKey(stats.FlyBall, loc)])
	}
	fmt.Fprintf(&b, "Running: SB %d, CS %d, DI %d\n",
		st.Team[stats.StolenBase], st.Team[stats.CaughtStealing],
		st.Team[stats.DefensiveIndifference])
	return b.String()
}

func playerTable(st *season.State, name string) (string, error) {
	rec, ok := st.Players[name]
	if !ok {
		return "", fmt.Errorf("no season stats for %q", name)
	}
	var b strings.Builder
	archived := ""
	if st.Archived[name] {
		archived = " (archived)"
	}
	bip := rec[stats.GroundBall] + rec[stats.FlyBall]
	fmt.Fprintf(&b, "%s%s: GP %d, BIP %d (GB %d / FB %d)\n",
		name, archived, rec[stats.GamesPlayed], bip,
		rec[stats.GroundBall], rec[stats.FlyBall])
	b.WriteString("Location      GB   FB\n")
	for _, loc := range stats.FieldLocations {
		gb := rec[stats.ComboKey(stats.GroundBall, loc)]
		fb := rec[stats.ComboKey(stats.FlyBall, loc)]
		if gb == 0 && fb == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-10s %4d %4d\n", loc, gb, fb)
	}
	fmt.Fprintf(&b, "SB %d (2B %d, 3B %d, H %d), CS %d, DI %d\n",
		rec[stats.StolenBase],
		rec[stats.RunningKey(stats.StolenBase, stats.BaseSecond)],
		rec[stats.RunningKey(stats.StolenBase, stats.BaseThird)],
		rec[stats.RunningKey(stats.StolenBase, stats.BaseHome)],
		rec[stats.CaughtStealing], rec[stats.DefensiveIndifference])
	return b.String(), nil
}

func gameSummary(rec *game.Record) string {
	names := make([]string, 0, len(rec.Players))
	for name := range rec.Players {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Balls in play: %d (GB %d / FB %d / bunt %d / sac bunt %d / unknown %d)\n",
		rec.Team.BallsInPlay(), rec.Team[stats.GroundBall], rec.Team[stats.FlyBall],
		rec.Team[stats.Bunt], rec.Team[stats.SacBunt], rec.Team[stats.UnknownLocation])
	for _, name := range names {
		pr := rec.Players[name]
		fmt.Fprintf(&b, "%-20s GB %2d  FB %2d  SB %2d\n",
			name, pr[stats.GroundBall], pr[stats.FlyBall], pr[stats.StolenBase])
	}
	return b.String()
}

func pitchingTable(st *season.State) string {
	names := make([]string, 0, len(st.Pitchers))
	for name := range st.Pitchers {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Pitcher              IP    K   BB   HBP  Pitches  Strike%\n")
	for _, name := range names {
		p := st.Pitchers[name]
		fmt.Fprintf(&b, "%-20s %-5s %3d %4d %5d %8d %7.0f%%\n",
			name, p.InningsPitched(), p.Strikeouts, p.Walks, p.HitBatters,
			p.Pitches, p.StrikePct()*100)
	}
	return b.String()
}

// sprayHistogram renders the player's fielded-location distribution as an
// ascii histogram, one bin per position.
func sprayHistogram(st *season.State, name string) (string, error) {
	rec, ok := st.Players[name]
	if !ok {
		return "", fmt.Errorf("no season stats for %q", name)
	}
	var samples []float64
	for i, loc := range stats.FieldLocations {
		n := rec[stats.ComboKey(stats.GroundBall, loc)] +
			rec[stats.ComboKey(stats.FlyBall, loc)]
		for j := 0; j < n; j++ {
			samples = append(samples, float64(i))
		}
	}
	if len(samples) == 0 {
		return "", fmt.Errorf("no located balls in play for %q", name)
	}
	hist := histogram.Hist(len(stats.FieldLocations), samples)
	var b strings.Builder
	err := histogram.Fprintf(&b, hist, histogram.Linear(40), func(v float64) string {
		i := int(v)
		if i < 0 || i >= len(stats.FieldLocations) {
			return "?"
		}
		return stats.FieldLocations[i]
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
