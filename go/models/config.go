package models

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const ConfigFile = "config.yml"

type Config struct {
	// Arch overrides host architecture detection.
	Arch string `yaml:"arch"`
	// StatVersion forces a stat generation ("modern", "legacy",
	// "unsupported") instead of probing.
	StatVersion string `yaml:"stat_version"`
	LogLevel    string `yaml:"log_level"`
	Color       bool   `yaml:"color"`
	Verbose     bool   `yaml:"verbose"`

	Output io.Writer `yaml:"-"`
}

// ParseConfig decodes a YAML config document.
func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.StatVersion = strings.ToLower(strings.TrimSpace(c.StatVersion))
	return c, nil
}

// LoadConfig reads config.yml from the first user or system config folder
// that has one. No config file yields an empty Config.
func LoadConfig() (*Config, error) {
	dirs := configdir.New("goposix", "")
	if folder := dirs.QueryFolderContainsFile(ConfigFile); folder != nil {
		data, err := folder.ReadFile(ConfigFile)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", folder.Path)
		}
		return ParseConfig(data)
	}
	return &Config{}, nil
}

// Logger builds the logrus logger described by the config.
func (c *Config) Logger() (*log.Logger, error) {
	logger := log.New()
	if c.Output != nil {
		logger.SetOutput(c.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}
	logger.SetLevel(log.WarnLevel)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if c.LogLevel != "" {
		level, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "config log_level")
		}
		logger.SetLevel(level)
	}
	return logger, nil
}
