package drift

import "time"

// Defaults for the verification job. LocalLimit and ResyncLimit are sized so
// a single run stays cheap on both the database and the vendor API; the
// remainder of a large drift is picked up by subsequent ticks.
const (
	DefaultInterval    = 10 * time.Minute
	DefaultLocalLimit  = 100
	DefaultResyncLimit = 10
)

// Config holds configuration for the periodic drift verification job.
type Config struct {
	// Enabled controls whether the scheduler is started at boot.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Interval is the fixed delay between the end of one verification run
	// and the start of the next.
	Interval time.Duration `mapstructure:"interval" default:"10m"`
	// LocalLimit caps how many synced records are fetched per store and run.
	LocalLimit int `mapstructure:"local_limit" default:"100"`
	// ResyncLimit caps how many resync jobs are queued per store and run.
	ResyncLimit int `mapstructure:"resync_limit" default:"10"`
	// AllowManualOverlap controls whether a manual verification may run
	// while a scheduled run is in flight. When false, manual requests fail
	// fast instead of running concurrently.
	AllowManualOverlap bool `mapstructure:"allow_manual_overlap" default:"true"`
}

// withDefaults fills zero values with the documented defaults.
func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.LocalLimit <= 0 {
		c.LocalLimit = DefaultLocalLimit
	}
	if c.ResyncLimit <= 0 {
		c.ResyncLimit = DefaultResyncLimit
	}
	return c
}
