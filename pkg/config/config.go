// Package config loads publinks settings from a TOML file and the
// environment.
//
// The file lives at $XDG_CONFIG_HOME/publinks/config.toml (falling back to
// ~/.config/publinks/config.toml):
//
//	enableDartFiles = true
//	enablePubspecFile = false
//
//	[server]
//	addr = "127.0.0.1:7878"
//
// Both toggles default to true when unset. A missing file is not an error.
// Environment variables override the file:
//
//	PUBLINKS_ENABLE_DART_FILES=false
//	PUBLINKS_ENABLE_PUBSPEC_FILE=false
//	PUBLINKS_ADDR=:8080
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/publinks/pkg/errors"
	"github.com/matzehuels/publinks/pkg/links"
)

const (
	// AppName is used for the configuration directory.
	AppName = "publinks"

	// FileName is the configuration file name.
	FileName = "config.toml"

	// DefaultAddr is the listen address of the link API.
	DefaultAddr = "127.0.0.1:7878"
)

// Environment variable names.
const (
	EnvEnableDartFiles   = "PUBLINKS_ENABLE_DART_FILES"
	EnvEnablePubspecFile = "PUBLINKS_ENABLE_PUBSPEC_FILE"
	EnvAddr              = "PUBLINKS_ADDR"
)

// Config holds the settings read from the configuration file.
type Config struct {
	EnableDartFiles   *bool  `toml:"enableDartFiles"`
	EnablePubspecFile *bool  `toml:"enablePubspecFile"`
	Server            Server `toml:"server"`
}

// Server configures the link API.
type Server struct {
	Addr string `toml:"addr"`
}

// Extraction returns the extractor toggles, treating unset values as true.
func (c Config) Extraction() links.Config {
	return links.Config{
		EnableDartFiles:   boolOr(c.EnableDartFiles, true),
		EnablePubspecFile: boolOr(c.EnablePubspecFile, true),
	}
}

// Addr returns the configured listen address or DefaultAddr.
func (c Config) Addr() string {
	if c.Server.Addr == "" {
		return DefaultAddr
	}
	return c.Server.Addr
}

// Dir returns the configuration directory following the XDG convention.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultPath returns the path of the configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the file at path and applies environment overrides. An empty
// path means DefaultPath. A missing file yields the defaults.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, applyEnv(&cfg, os.LookupEnv)
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = Config{}
	case err != nil:
		return Config{}, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "decode %s", path)
	default:
		if err := checkUndecoded(md); err != nil {
			return Config{}, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes configuration from TOML text without consulting the
// environment.
func Parse(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err == nil {
		err = checkUndecoded(md)
	}
	if err != nil {
		return Config{}, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "decode config")
	}
	return cfg, nil
}

// checkUndecoded rejects keys the Config type does not know, which are
// usually misspelled toggles.
func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for name, dst := range map[string]**bool{
		EnvEnableDartFiles:   &cfg.EnableDartFiles,
		EnvEnablePubspecFile: &cfg.EnablePubspecFile,
	} {
		v, ok := lookup(name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return perrors.New(perrors.ErrCodeInvalidConfig, "%s: not a boolean: %q", name, v)
		}
		*dst = &b
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Server.Addr = v
	}
	return nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
