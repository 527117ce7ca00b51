package cache

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"

	"github.com/benchcoach/dugout/season"
)

func TestAcquireLoadsOnce(t *testing.T) {
	is := is.New(t)
	t.Cleanup(func() { Evict("Eagles") })

	var loads atomic.Int32
	load := func(team string) (*season.State, error) {
		loads.Add(1)
		return season.NewState(), nil
	}

	a, err := Acquire("Eagles", load)
	is.NoErr(err)
	b, err := Acquire("Eagles", load)
	is.NoErr(err)
	is.Equal(a, b)
	is.Equal(loads.Load(), int32(1))
}

func TestAcquireLoadError(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")
	_, err := Acquire("Hawks", func(string) (*season.State, error) { return nil, boom })
	is.Equal(err, boom)

	// A failed load is not cached.
	st := season.NewState()
	sess, err := Acquire("Hawks", func(string) (*season.State, error) { return st, nil })
	is.NoErr(err)
	is.Equal(sess.State, st)
	Evict("Hawks")
}

func TestEvictForcesReload(t *testing.T) {
	is := is.New(t)
	var loads atomic.Int32
	load := func(string) (*season.State, error) {
		loads.Add(1)
		return season.NewState(), nil
	}
	_, err := Acquire("Owls", load)
	is.NoErr(err)
	Evict("Owls")
	_, err = Acquire("Owls", load)
	is.NoErr(err)
	is.Equal(loads.Load(), int32(2))
	Evict("Owls")
}
