package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/maxmcd/calc/internal/keypad"
	"github.com/maxmcd/calc/pkg/fxt"
	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

const (
	// EnvVar can point at a config file when --config isn't passed
	EnvVar = "CALC_CONFIG"

	DefaultFilename = "calc.toml"
)

type Config struct {
	Version string  `toml:"version"`
	Display Display `toml:"display"`
	Server  Server  `toml:"server"`
}

type Display struct {
	// Precision is the number of decimal places results are rounded to, a
	// negative value shows the shortest exact representation.
	Precision int    `toml:"precision"`
	Theme     string `toml:"theme"`
}

type Server struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func Default() Config {
	return Config{
		Version: "1.0.0",
		Display: Display{Precision: -1, Theme: "dark"},
		Server:  Server{Host: "localhost", Port: "2727"},
	}
}

func (cfg Config) Render(w io.Writer) {
	fxt.Fprintfln(w, "version = %q", cfg.Version)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[display]")
	fxt.Fprintfln(w, "precision = %d", cfg.Display.Precision)
	fxt.Fprintfln(w, "theme = %q", cfg.Display.Theme)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[server]")
	fxt.Fprintfln(w, "host = %q", cfg.Server.Host)
	fxt.Fprintfln(w, "port = %q", cfg.Server.Port)
}

func (cfg Config) Addr() string {
	return fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
}

// Theme returns the keypad colors named by the config
func (cfg Config) Theme() keypad.Theme {
	return keypad.Themes[cfg.Display.Theme]
}

// ParseConfig decodes a config on top of the defaults, so any field left out
// of the file keeps its default value.
func ParseConfig(r io.Reader) (cfg Config, err error) {
	cfg = Default()
	if _, err = toml.DecodeReader(r, &cfg); err != nil {
		return cfg, err
	}
	if !semver.IsValid("v" + cfg.Version) {
		return cfg, errors.Errorf("config version %q is not a valid semantic version number", cfg.Version)
	}
	if semver.Major("v"+cfg.Version) != "v1" {
		return cfg, errors.Errorf("config version %q is not supported, expected 1.x.x", cfg.Version)
	}
	if _, found := keypad.Themes[cfg.Display.Theme]; !found {
		return cfg, errors.Errorf("unknown theme %q", cfg.Display.Theme)
	}
	if cfg.Display.Precision > 15 {
		return cfg, errors.Errorf("precision %d is larger than the 15 digits a float64 can hold", cfg.Display.Precision)
	}
	return cfg, nil
}

func ReadConfig(location string) (cfg Config, err error) {
	f, err := os.Open(location)
	if err != nil {
		return cfg, errors.Wrapf(err, "error loading %q", location)
	}
	defer f.Close()
	cfg, err = ParseConfig(f)
	return cfg, errors.Wrapf(err, "error decoding %q", location)
}

// Load reads the config at location. An empty location falls back to
// $CALC_CONFIG and then ./calc.toml, and if neither exists the defaults are
// returned.
func Load(location string) (Config, error) {
	if location != "" {
		return ReadConfig(location)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return ReadConfig(env)
	}
	if _, err := os.Stat(DefaultFilename); err == nil {
		return ReadConfig(DefaultFilename)
	}
	return Default(), nil
}
