package config

import (
	"os"
	"path/filepath"
	"testing"

	"vidembed/internal/video"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "vidembed")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SproutVideoBase != "//videos.sproutvideo.com/embed/" {
		t.Errorf("default sproutvideo base = %q", cfg.SproutVideoBase)
	}
	if cfg.SplitSproutVideoIDs {
		t.Error("default should duplicate the trailing id")
	}
	if !cfg.Color {
		t.Error("default color should be true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty sproutvideo base", func(c *Config) { c.SproutVideoBase = "" }, true},
		{"plain http base", func(c *Config) { c.YouTubeBase = "http://www.youtube.com/embed/" }, true},
		{"base without trailing slash", func(c *Config) { c.VimeoBase = "https://player.vimeo.com/video" }, true},
		{"base with query", func(c *Config) { c.SproutVideoBase = "//videos.sproutvideo.com/embed/?x=1/" }, true},
		{"https sproutvideo base", func(c *Config) { c.SproutVideoBase = "https://videos.sproutvideo.com/embed/" }, false},
		{"nocookie youtube", func(c *Config) { c.YouTubeBase = "https://www.youtube-nocookie.com/embed/" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	writeConfig(t, `
sproutvideo_base = "https://videos.sproutvideo.com/embed/"
split_sproutvideo_ids = true
color = false
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SproutVideoBase != "https://videos.sproutvideo.com/embed/" {
		t.Errorf("sproutvideo_base = %q", cfg.SproutVideoBase)
	}
	if !cfg.SplitSproutVideoIDs {
		t.Error("split_sproutvideo_ids should be true")
	}
	if cfg.Color {
		t.Error("color should be false")
	}
	if cfg.YouTubeBase != video.DefaultYouTubeBase {
		t.Errorf("unset keys should keep defaults, got youtube_base = %q", cfg.YouTubeBase)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	writeConfig(t, `split_sprout_ids = true`)

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadRejectsInvalidValue(t *testing.T) {
	writeConfig(t, `vimeo_base = "ftp://player.vimeo.com/video/"`)

	if _, err := Load(); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadMalformed(t *testing.T) {
	writeConfig(t, `color = "yes`)

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.SproutVideoBase != video.DefaultSproutVideoBase {
		t.Errorf("missing file should return defaults, got %q", cfg.SproutVideoBase)
	}
}

func TestCodec(t *testing.T) {
	cfg := Default()
	cfg.SproutVideoBase = "https://videos.sproutvideo.com/embed/"
	cfg.SplitSproutVideoIDs = true

	codec := cfg.Codec()
	fs := codec.Parse(video.SproutVideo, "//videos.sproutvideo.com/embed/1234/5678?")
	if fs.PrimaryID != "1234" || fs.SecondaryID != "5678" {
		t.Errorf("ids = %q/%q, want 1234/5678", fs.PrimaryID, fs.SecondaryID)
	}
	if got := codec.Build(fs); got != "https://videos.sproutvideo.com/embed/1234/5678?" {
		t.Errorf("Build() = %q", got)
	}
}
