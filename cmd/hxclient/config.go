package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm/hxclient"
)

// Config is the YAML file accepted by -config.
//
//	base_url: http://localhost:8080
//	timeout: 5s
//	render_error_status: true
//	headers:
//	  X-CSRF-Token: abc123
//	log:
//	  level: debug
//	  format: json
type Config struct {
	BaseURL           string            `yaml:"base_url"`
	Timeout           time.Duration     `yaml:"timeout"`
	RenderErrorStatus bool              `yaml:"render_error_status"`
	Headers           map[string]string `yaml:"headers"`
	Log               LogConfig         `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// loadConfig reads a config file. An empty path yields the zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Timeout < 0 {
		return cfg, fmt.Errorf("config %s: negative timeout %s", path, cfg.Timeout)
	}
	return cfg, nil
}

// Options maps the config onto engine options.
func (c Config) Options(logger *slog.Logger) []hxclient.Option {
	opts := []hxclient.Option{
		hxclient.WithBaseURL(c.BaseURL),
		hxclient.WithTimeout(c.Timeout),
		hxclient.WithLogger(logger),
	}
	for k, v := range c.Headers {
		opts = append(opts, hxclient.WithHeader(k, v))
	}
	if c.RenderErrorStatus {
		opts = append(opts, hxclient.WithErrorStatusRendering())
	}
	return opts
}

// Logger builds the logger described by the log section.
func (c LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return nil, fmt.Errorf("log format %q: want text or json", c.Format)
}
