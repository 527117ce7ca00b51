// Package config loads engine and host settings from flags, environment
// variables (DUGOUT_ prefix) and an optional config file.
package config

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

// Load parses args and merges them over environment variables and an
// optional dugout.yaml in the working directory.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("dugout", pflag.ContinueOnError)
	fs.String("team-name", "", "our team's name, as it appears in transcript half-inning headers")
	fs.Bool("strict", false, "drop balls in play with no location match instead of bucketing as unknown")
	fs.String("db-path", "./dugout.db", "path to the season database")
	fs.String("data-path", "./data", "directory holding rosters and transcripts")
	fs.Bool("debug", false, "debug logging")
	fs.String("cpu-profile", "", "write a cpu profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}

	c.v.SetEnvPrefix("dugout")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetConfigName("dugout")
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		log.Debug().Msg("no config file found; using flags and environment")
	}
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// AdjustRelativePaths anchors relative path settings at the executable's
// directory so the binaries work when launched from anywhere.
func (c *Config) AdjustRelativePaths(exPath string) {
	for _, key := range []string{"db-path", "data-path"} {
		p := c.v.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.v.Set(key, filepath.Join(exPath, p))
	}
}

// SanitizedSettings renders the active settings for the startup log line.
func (c *Config) SanitizedSettings() string {
	var b strings.Builder
	for i, key := range []string{"team-name", "strict", "db-path", "data-path", "debug"} {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(c.v.GetString(key))
	}
	return b.String()
}
