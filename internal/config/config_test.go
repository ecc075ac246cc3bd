package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrDefaultMissingFileUsesEnv(t *testing.T) {
	t.Setenv("BLOG_FEED_URL", "https://example.com/feed.json")
	t.Setenv("BLOG_API_TOKEN", "tok")
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Blog.FeedURL != "https://example.com/feed.json" {
		t.Fatalf("expected env feed URL, got %q", cfg.Blog.FeedURL)
	}
	if cfg.Credentials.APIToken != "tok" {
		t.Fatalf("expected env token, got %q", cfg.Credentials.APIToken)
	}
	if cfg.Blog.Source != "auto" || cfg.Output.Color != "auto" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestFileValueBeatsEnv(t *testing.T) {
	t.Setenv("BLOG_FEED_URL", "https://env.example.com/feed.json")
	path := filepath.Join(t.TempDir(), "postpace.yaml")
	cfg := Default()
	cfg.Blog.FeedURL = "https://file.example.com/feed.json"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Blog.FeedURL != "https://file.example.com/feed.json" {
		t.Fatalf("expected file value to win, got %q", loaded.Blog.FeedURL)
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postpace.yaml")
	if err := os.WriteFile(path, []byte("[unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Fatal("expected parse error")
	}
}
