package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug        = "debug"
	ConfigDepth        = "depth"
	ConfigThreads      = "threads"
	ConfigStonesPerPit = "stones-per-pit"
	ConfigPrune        = "prune"
	ConfigCPUProfile   = "cpu-profile"

	// MaxThreads is the most root tasks that can ever be useful: one per pit.
	MaxThreads = 6
)

type Config struct {
	*viper.Viper
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigDepth, 12)
	v.SetDefault(ConfigThreads, MaxThreads)
	v.SetDefault(ConfigStonesPerPit, 4)
	v.SetDefault(ConfigPrune, true)
	v.SetDefault(ConfigCPUProfile, "")

	v.SetEnvPrefix("mancala")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfig returns a config with every key at its default value. It
// still honours MANCALA_* environment variables.
func DefaultConfig() Config {
	return Config{newViper()}
}

// FlagSet returns a flag set with a flag for every config key. Binaries add
// their own flags to it before calling Load.
func FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigDepth, 12, "search depth in plies")
	fs.Int(ConfigThreads, MaxThreads, "number of root moves searched at once")
	fs.Int(ConfigStonesPerPit, 4, "stones in each pit at the start of a game")
	fs.Bool(ConfigPrune, true, "use alpha-beta pruning; turn off for a full-width search")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	return fs
}

// Load parses args into fs and layers the flags over the defaults and the
// environment. Only flags that were actually set override other sources.
func (c *Config) Load(fs *pflag.FlagSet, args []string) error {
	c.Viper = newViper()
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.BindPFlags(fs)
}

// Threads returns the configured worker count, clamped to [1, MaxThreads].
func (c *Config) Threads() int {
	return min(max(c.GetInt(ConfigThreads), 1), MaxThreads)
}
