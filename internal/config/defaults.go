package config

const (
	defaultConfigPath      = "~/.config/logcursor/config.toml"
	projectConfigName      = "logcursor.toml"
	fallbackStateDir       = "~/.local/state/logcursor"
	defaultBufferKiB       = 64
	maxBufferKiB           = 16 * 1024
	defaultFollowInterval  = 1000
	defaultFollowWait      = 0
	defaultFollowExclusive = true
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
		Reader: Reader{
			BufferKiB: defaultBufferKiB,
		},
		Follow: Follow{
			IntervalMS: defaultFollowInterval,
			WaitMS:     defaultFollowWait,
			Exclusive:  defaultFollowExclusive,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
