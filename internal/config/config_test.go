package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PUBLIC_ADDR", "PUBLIC_DIR", "DATABASE_URL", "SITE_BASE_URL", "SITE_TITLE"} {
		if value, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Fatalf("expected :3000, got %q", cfg.Server.Addr)
	}
	if cfg.Database.URL != DefaultDatabaseURL {
		t.Fatalf("unexpected database url %q", cfg.Database.URL)
	}
	if cfg.Site.BaseURL != "http://localhost:3000" {
		t.Fatalf("unexpected base url %q", cfg.Site.BaseURL)
	}
	if cfg.Content != blog.DefaultSiteContent() {
		t.Fatalf("expected default content, got %+v", cfg.Content)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "blog.yaml")
	yamlData := `
server:
  addr: "127.0.0.1:8080"
  public_dir: assets
database:
  url: sqlite://data/blog.db
site:
  base_url: https://blog.example.com/
content:
  about: "About me."
`
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DATABASE_URL", "file://data/posts.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" || cfg.Server.PublicDir != "assets" {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Database.URL != "file://data/posts.json" {
		t.Fatalf("expected env to win, got %q", cfg.Database.URL)
	}
	if cfg.Site.BaseURL != "https://blog.example.com" {
		t.Fatalf("unexpected base url %q", cfg.Site.BaseURL)
	}
	if cfg.Content.About != "About me." {
		t.Fatalf("unexpected about text %q", cfg.Content.About)
	}
	if cfg.Content.Contact != blog.DefaultSiteContent().Contact {
		t.Fatal("expected default contact text")
	}
}

func TestLoadRejectsBadDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "redis://localhost:6379")

	if _, err := Load(""); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestBaseURLFromAddr(t *testing.T) {
	cases := map[string]string{
		":3000":              "http://localhost:3000",
		"0.0.0.0:80":         "http://localhost:80",
		"blog.local:8080":    "http://blog.local:8080",
		"https://x.example/": "https://x.example",
		"":                   "",
	}
	for addr, want := range cases {
		if got := baseURLFromAddr(addr); got != want {
			t.Fatalf("%q: expected %q, got %q", addr, want, got)
		}
	}
}
