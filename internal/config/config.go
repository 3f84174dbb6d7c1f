package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type LevelList []logrus.Level

func (a LevelList) MarshalText() ([]byte, error) {
	if len(a) == 0 {
		return []byte("-"), nil
	}

	s := make([]string, len(a))
	for i, e := range a {
		s[i] = e.String()
	}

	return []byte(strings.Join(s, ",")), nil
}

func (a *LevelList) UnmarshalText(d []byte) error {
	if string(d) == "" || string(d) == "-" {
		*a = LevelList{}
		return nil
	}

	var aa LevelList

	for _, e := range strings.Split(string(d), ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}

		l, err := logrus.ParseLevel(e)
		if err != nil {
			return fmt.Errorf("config.LevelList.UnmarshalText: could not parse value as logrus level: %w", err)
		}

		aa = append(aa, l)
	}

	*a = aa

	return nil
}

type Config struct {
	Config                   string       `name:"config" toml:"config" yaml:"config" help:"Config file location."`
	LogLevel                 logrus.Level `name:"log_level" toml:"log_level" yaml:"log_level" help:"Global log level."`
	LogDebugLevels           LevelList    `name:"log_debug_levels" toml:"log_debug_levels" yaml:"log_debug_levels" help:"Which log levels to include stack data on."`
	LogJSON                  bool         `name:"log_json" toml:"log_json" yaml:"log_json" help:"Write log entries as JSON."`
	ApplicationAddr          string       `name:"application_addr" toml:"application_addr" yaml:"application_addr" help:"Address to listen on for application server."`
	ApplicationMetrics       bool         `name:"application_metrics" toml:"application_metrics" yaml:"application_metrics" help:"Expose prometheus metrics."`
	ApplicationMetricsPath   string       `name:"application_metrics_path" toml:"application_metrics_path" yaml:"application_metrics_path" help:"Path to serve prometheus metrics on."`
	ApplicationTestingRoutes bool         `name:"application_testing_routes" toml:"application_testing_routes" yaml:"application_testing_routes" help:"Mount the route that clears all data."`
	ApplicationMaxBodyBytes  int          `name:"application_max_body_bytes" toml:"application_max_body_bytes" yaml:"application_max_body_bytes" help:"Largest accepted request body; 0 for no limit."`
}

func Default() Config {
	return Config{
		LogLevel:                 logrus.InfoLevel,
		LogDebugLevels:           LevelList{logrus.DebugLevel, logrus.TraceLevel},
		ApplicationAddr:          ":3000",
		ApplicationMetrics:       true,
		ApplicationMetricsPath:   "/metrics",
		ApplicationTestingRoutes: true,
		ApplicationMaxBodyBytes:  1 << 20,
	}
}

func (c Config) Validate() error {
	if c.ApplicationAddr == "" {
		return fmt.Errorf("config.Config.Validate: application_addr must not be empty")
	}

	if c.ApplicationMetrics && !strings.HasPrefix(c.ApplicationMetricsPath, "/") {
		return fmt.Errorf("config.Config.Validate: application_metrics_path must start with a slash; was %q", c.ApplicationMetricsPath)
	}

	if c.ApplicationMaxBodyBytes < 0 {
		return fmt.Errorf("config.Config.Validate: application_max_body_bytes must not be negative")
	}

	return nil
}
