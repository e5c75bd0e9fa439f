package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Insertion ends of the generated register list
const (
	InsertFront = "front"
	InsertBack  = "back"
)

// Config controls where artifacts go and the names used inside them.
// The zero-value file produces output identical to the historical generator.
type Config struct {
	Output       OutputConfig       `yaml:"output"`
	Database     DatabaseConfig     `yaml:"database"`
	Registration RegistrationConfig `yaml:"registration"`
}

// OutputConfig contains output file placement
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// DatabaseConfig contains device-database record settings
type DatabaseConfig struct {
	DTYP   string `yaml:"dtyp"`
	Port   string `yaml:"port"`
	Addr   int    `yaml:"addr"`
	Indent string `yaml:"indent"`
}

// RegistrationConfig contains the names used by the registration source
type RegistrationConfig struct {
	RegisterVar  string `yaml:"register_var"`
	RegisterList string `yaml:"register_list"`
	Insert       string `yaml:"insert"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfigFromPath loads a YAML configuration file and fills in defaults
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.Prefix == "" {
		c.Output.Prefix = "gc_t4u"
	}
	if c.Database.DTYP == "" {
		c.Database.DTYP = "asynFloat64"
	}
	if c.Database.Port == "" {
		c.Database.Port = "$(PORT)"
	}
	if c.Registration.RegisterVar == "" {
		c.Registration.RegisterVar = "curr_reg"
	}
	if c.Registration.RegisterList == "" {
		c.Registration.RegisterList = "pidRegData_"
	}
	if c.Registration.Insert == "" {
		c.Registration.Insert = InsertFront
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Registration.Insert {
	case InsertFront, InsertBack:
	default:
		return fmt.Errorf("invalid registration.insert %q: must be %q or %q",
			c.Registration.Insert, InsertFront, InsertBack)
	}
	if c.Database.Addr < 0 {
		return fmt.Errorf("invalid database.addr %d: must not be negative", c.Database.Addr)
	}
	return nil
}
