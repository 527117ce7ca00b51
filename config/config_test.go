package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.GetString("team-name"), "")
	is.Equal(c.GetBool("strict"), false)
	is.Equal(c.GetString("db-path"), "./dugout.db")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--team-name", "Eagles", "--strict", "--debug"})
	is.NoErr(err)
	is.Equal(c.GetString("team-name"), "Eagles")
	is.True(c.GetBool("strict"))
	is.True(c.GetBool("debug"))
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--db-path", "data/dugout.db"}))
	c.AdjustRelativePaths("/opt/dugout")
	is.Equal(c.GetString("db-path"), "/opt/dugout/data/dugout.db")

	is.NoErr(c.Load([]string{"--db-path", "/var/lib/dugout.db"}))
	c.AdjustRelativePaths("/opt/dugout")
	is.Equal(c.GetString("db-path"), "/var/lib/dugout.db")
}
