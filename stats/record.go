package stats

import "fmt"

// Record maps stat keys to non-negative counts. It is used both for team
// totals and for individual players.
type Record map[string]int

// NewRecord returns a fully keyed record with every recognized key at zero.
func NewRecord() Record {
	r := make(Record, len(AllKeys))
	for _, k := range AllKeys {
		r[k] = 0
	}
	return r
}

// Normalize fills in any recognized keys missing from r. Records loaded from
// storage written by older versions may lack keys added since.
func (r Record) Normalize() {
	for _, k := range AllKeys {
		if _, ok := r[k]; !ok {
			r[k] = 0
		}
	}
}

// Incr adds one to the given key.
func (r Record) Incr(key string) {
	r[key]++
}

// Add folds every count from o into r.
func (r Record) Add(o Record) {
	for k, v := range o {
		r[k] += v
	}
}

// Clone returns an independent copy of r.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// BallsInPlay derives the number of classified balls in play from the
// location-family buckets.
func (r Record) BallsInPlay() int {
	n := 0
	for _, k := range LocationKeys {
		n += r[k]
	}
	return n
}

// Pitching holds one pitcher's counting stats. Innings pitched is derived
// from Outs for display, never stored.
type Pitching struct {
	Outs       int `json:"outs"`
	Strikeouts int `json:"strikeouts"`
	Walks      int `json:"walks"`
	HitBatters int `json:"hitBatters"`
	Pitches    int `json:"pitches"`
	Strikes    int `json:"strikes"`
}

// Add folds o into p.
func (p *Pitching) Add(o *Pitching) {
	p.Outs += o.Outs
	p.Strikeouts += o.Strikeouts
	p.Walks += o.Walks
	p.HitBatters += o.HitBatters
	p.Pitches += o.Pitches
	p.Strikes += o.Strikes
}

// Empty reports whether p has recorded nothing at all.
func (p *Pitching) Empty() bool {
	return p.Outs == 0 && p.Strikeouts == 0 && p.Walks == 0 &&
		p.HitBatters == 0 && p.Pitches == 0 && p.Strikes == 0
}

// InningsPitched renders outs as innings in the conventional notation:
// whole innings, then leftover outs as tenths (7 outs -> "2.1").
func (p *Pitching) InningsPitched() string {
	return fmt.Sprintf("%d.%d", p.Outs/3, p.Outs%3)
}

// StrikePct returns the fraction of seen pitches that were strikes, or 0
// when no pitches were seen.
func (p *Pitching) StrikePct() float64 {
	if p.Pitches == 0 {
		return 0
	}
	return float64(p.Strikes) / float64(p.Pitches)
}
