package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFormat  = "json"
	DefaultWorkers = 4
)

// Config is the axolotl tool configuration. It can be described in JSON or YAML.
type Config struct {
	Log     LogConfig     `json:"log" yaml:"log"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
}

type LogConfig struct {
	Level    string `json:"level,omitempty" yaml:"level,omitempty"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

type ConvertConfig struct {
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	From    string `json:"from,omitempty" yaml:"from,omitempty"`
	To      string `json:"to,omitempty" yaml:"to,omitempty"`
	Workers int    `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

// LoadFile picks the decoder from the file extension. Anything but .json is read as YAML.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	var c *Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = LoadJSON(f)
	} else {
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = "console"
	}
	if c.Convert.From == "" {
		c.Convert.From = DefaultFormat
	}
	if c.Convert.To == "" {
		c.Convert.To = DefaultFormat
	}
	if c.Convert.Workers <= 0 {
		c.Convert.Workers = DefaultWorkers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log encoding must be json or console, got %q", c.Log.Encoding)
	}
	if c.Convert.Workers <= 0 {
		return fmt.Errorf("convert workers must be positive, got %d", c.Convert.Workers)
	}
	return nil
}
