package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"logcursor/internal/config"
	"logcursor/internal/linecursor"
	"logcursor/internal/logging"
)

var errNoLogPath = errors.New("log path required: pass it as an argument or set paths.default_log")

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// sessionLogger builds a logger whose records all carry sessionID.
func (c *commandContext) sessionLogger(sessionID string) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	opts := logging.OptionsFromConfig(cfg)
	opts.SessionID = sessionID
	logger, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// logPath picks the file to read from the positional arguments or the
// configured default.
func (c *commandContext) logPath(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return config.ExpandPath(strings.TrimSpace(args[0]))
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Paths.DefaultLog == "" {
		return "", errNoLogPath
	}
	return cfg.Paths.DefaultLog, nil
}

func (c *commandContext) openReader(args []string) (*linecursor.Reader, error) {
	path, err := c.logPath(args)
	if err != nil {
		return nil, err
	}
	return c.openReaderAt(path, nil)
}

func (c *commandContext) openReaderAt(path string, logger *slog.Logger) (*linecursor.Reader, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		if logger, err = c.ensureLogger(); err != nil {
			return nil, err
		}
	}
	return linecursor.Open(path,
		linecursor.WithLogger(logger),
		linecursor.WithBufferSize(cfg.BufferSize()),
	)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// skipLines advances r by n lines before the command's own read.
func skipLines(r *linecursor.Reader, n int) error {
	if n <= 0 {
		return nil
	}
	if _, err := r.SkipNLines(n); err != nil {
		return fmt.Errorf("skip %d lines: %w", n, err)
	}
	return nil
}
