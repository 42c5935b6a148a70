package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReader(); err != nil {
		return err
	}
	if err := c.validateFollow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateReader() error {
	if c.Reader.BufferKiB <= 0 {
		return errors.New("reader.buffer_kib must be positive")
	}
	if c.Reader.BufferKiB > maxBufferKiB {
		return fmt.Errorf("reader.buffer_kib must be at most %d", maxBufferKiB)
	}
	return nil
}

func (c *Config) validateFollow() error {
	if c.Follow.IntervalMS <= 0 {
		return errors.New("follow.interval_ms must be positive")
	}
	if c.Follow.WaitMS < 0 {
		return errors.New("follow.wait_ms must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
