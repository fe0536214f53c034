package logger

import "fmt"

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn, error.
	Level string
	// Format selects the encoder: "json" or "console".
	Format string
	// Output selects the sink: "console", "file" or "both".
	Output string
	// File configures rotation when Output includes a file sink.
	File FileConfig
	// EnableCaller annotates entries with the calling location.
	EnableCaller bool
	// EnableStacktrace attaches stacktraces at error level and above.
	EnableStacktrace bool
}

// FileConfig configures lumberjack rotation.
type FileConfig struct {
	Filename   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	Compress   bool
}

// DefaultConfig returns a console JSON logger at info level.
func DefaultConfig() *Config {
	return &Config{
		Level:        "info",
		Format:       "json",
		Output:       "console",
		EnableCaller: true,
	}
}

// Validate checks the configuration for unusable combinations.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "console":
	case "file", "both":
		if c.File.Filename == "" {
			return fmt.Errorf("logger: file output requires a filename")
		}
	default:
		return fmt.Errorf("logger: unknown output %q", c.Output)
	}

	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logger: unknown format %q", c.Format)
	}

	return nil
}
