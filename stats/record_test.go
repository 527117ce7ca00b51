package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewRecordFullyKeyed(t *testing.T) {
	is := is.New(t)
	r := NewRecord()
	for _, k := range AllKeys {
		v, ok := r[k]
		is.True(ok)
		is.Equal(v, 0)
	}
	// Spot-check a few keys that must exist.
	for _, k := range []string{"GB", "FB", "GB-SS", "FB-CF", "SB-2B", "POCS-3B", "UNK", "GP"} {
		_, ok := r[k]
		is.True(ok)
	}
}

func TestNormalizeBackfillsOldRecords(t *testing.T) {
	is := is.New(t)
	// A record saved by a version that predates running-event sub-buckets.
	r := Record{"GB": 7, "FB": 3, "SS": 4}
	r.Normalize()
	is.Equal(r["GB"], 7)
	is.Equal(r["SS"], 4)
	is.Equal(r["SB-2B"], 0)
	is.Equal(r["GP"], 0)
}

func TestRecordAdd(t *testing.T) {
	is := is.New(t)
	a := NewRecord()
	a.Incr(GroundBall)
	a.Incr(Shortstop)
	b := NewRecord()
	b.Incr(GroundBall)
	a.Add(b)
	is.Equal(a[GroundBall], 2)
	is.Equal(a[Shortstop], 1)
}

func TestInningsPitched(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		outs int
		ip   string
	}{
		{0, "0.0"},
		{1, "0.1"},
		{3, "1.0"},
		{7, "2.1"},
		{20, "6.2"},
	}
	for _, c := range cases {
		p := &Pitching{Outs: c.outs}
		is.Equal(p.InningsPitched(), c.ip)
	}
}

func TestStrikePct(t *testing.T) {
	is := is.New(t)
	p := &Pitching{}
	is.Equal(p.StrikePct(), 0.0)
	p.Pitches = 20
	p.Strikes = 13
	is.Equal(p.StrikePct(), 0.65)
}

func TestComboAndRunningKeys(t *testing.T) {
	is := is.New(t)
	is.Equal(ComboKey(GroundBall, Shortstop), "GB-SS")
	is.Equal(RunningKey(StolenBase, BaseSecond), "SB-2B")
	is.Equal(RunningKey(CaughtStealing, ""), "CS")
}
