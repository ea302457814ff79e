package main

//go:generate go tool errtrace -w .

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"braces.dev/errtrace"
	"github.com/hashicorp/go-metrics"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/aeronuri/dns"
	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/log"
	"github.com/ghettovoice/aeronuri/netaddr"
	"github.com/ghettovoice/aeronuri/uri"
)

// Config is the YAML configuration of the tool.
type Config struct {
	Resolver ResolverConfig `yaml:"resolver"`
	Log      LogConfig      `yaml:"log"`
	// Channels are inspected before the channels given as arguments.
	Channels []string `yaml:"channels"`
}

// ResolverConfig selects the host name resolution backend.
type ResolverConfig struct {
	// NameServer sends queries straight to the given server instead of the system resolver.
	NameServer string `yaml:"nameserver"`
	// Direct sends queries to the first resolv.conf server when NameServer is empty.
	Direct bool `yaml:"direct"`
	// Timeout of a single direct query.
	Timeout time.Duration `yaml:"timeout"`
	// Family is one of "ip", "ip4" or "ip6".
	Family string `yaml:"family"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads and validates the config file.
func LoadConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("open config file: %w", err))
	}
	return errtrace.Wrap2(DecodeConfig(bytes.NewReader(file)))
}

// DecodeConfig decodes and validates YAML config from r.
func DecodeConfig(r io.Reader) (*Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errtrace.Wrap(fmt.Errorf("invalid config file: %w", err))
	}
	if err := c.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &c, nil
}

// Validate checks all values and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := netaddr.ParseFamily(c.Resolver.Family); err != nil {
		errs = append(errs, fmt.Errorf("resolver.family: %w", err))
	}
	if c.Resolver.Timeout < 0 {
		errs = append(errs, fmt.Errorf("resolver.timeout: %w",
			errorutil.NewInvalidArgumentError("negative timeout %s", c.Resolver.Timeout)))
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch log.Format(c.Log.Format) {
	case "", log.FormatConsole, log.FormatDev, log.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format: %w",
			errorutil.NewInvalidArgumentError("unknown format %q", c.Log.Format)))
	}
	for i, ch := range c.Channels {
		if _, err := uri.Parse(ch); err != nil {
			errs = append(errs, fmt.Errorf("channels[%d]: %w", i, err))
		}
	}

	return errtrace.Wrap(errorutil.JoinPrefix("invalid config:", errs...))
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return lvl, nil
}

func (c *Config) hostResolver() netaddr.HostResolver {
	if c.Resolver.NameServer == "" && !c.Resolver.Direct {
		return dns.DefaultResolver()
	}
	return &dns.Resolver{
		NameServer: c.Resolver.NameServer,
		Direct:     c.Resolver.Direct,
		Timeout:    c.Resolver.Timeout,
	}
}

func (c *Config) newResolver(logger *slog.Logger, sink metrics.MetricSink) *netaddr.Resolver {
	family, _ := netaddr.ParseFamily(c.Resolver.Family)
	return netaddr.NewResolver(&netaddr.ResolverOptions{
		HostResolver: c.hostResolver(),
		Family:       family,
		Logger:       logger,
		MetricSink:   sink,
		MetricLabels: []metrics.Label{{Name: "app", Value: "aeronuri"}},
	})
}
