// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"vidembed/internal/video"
)

// Config holds all application configuration.
type Config struct {
	SproutVideoBase string `toml:"sproutvideo_base"`
	YouTubeBase     string `toml:"youtube_base"`
	VimeoBase       string `toml:"vimeo_base"`

	// SplitSproutVideoIDs reads SproutVideo ids from the last two path
	// segments instead of duplicating the last one.
	SplitSproutVideoIDs bool `toml:"split_sproutvideo_ids"`

	Color bool `toml:"color"`
	Debug bool `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		SproutVideoBase:     video.DefaultSproutVideoBase,
		YouTubeBase:         video.DefaultYouTubeBase,
		VimeoBase:           video.DefaultVimeoBase,
		SplitSproutVideoIDs: false,
		Color:               true,
		Debug:               false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vidembed"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vidembed"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	bases := []struct {
		key, val string
	}{
		{"sproutvideo_base", c.SproutVideoBase},
		{"youtube_base", c.YouTubeBase},
		{"vimeo_base", c.VimeoBase},
	}
	for _, b := range bases {
		if err := validateBase(b.val); err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
	}
	return nil
}

// validateBase accepts https:// and protocol-relative templates ending in "/".
func validateBase(base string) error {
	if base == "" {
		return fmt.Errorf("embed base cannot be empty")
	}
	if !strings.HasPrefix(base, "https://") && !strings.HasPrefix(base, "//") {
		return fmt.Errorf("embed base %q must start with https:// or //", base)
	}
	if !strings.HasSuffix(base, "/") {
		return fmt.Errorf("embed base %q must end with /", base)
	}
	if strings.ContainsAny(base, "?#") {
		return fmt.Errorf("embed base %q must not carry a query or fragment", base)
	}
	return nil
}

// Codec builds the video codec described by the configuration.
func (c *Config) Codec() *video.Codec {
	return video.NewCodec(
		video.NewYouTube(c.YouTubeBase),
		video.NewVimeo(c.VimeoBase),
		video.NewSproutVideo(c.SproutVideoBase, c.SplitSproutVideoIDs),
	)
}
