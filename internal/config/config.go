package config

import (
	"net"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
)

type Config struct {
	Server   ServerConfig     `yaml:"server"`
	Database DatabaseConfig   `yaml:"database"`
	Site     SiteConfig       `yaml:"site"`
	Content  blog.SiteContent `yaml:"content"`
}

type ServerConfig struct {
	Addr      string `yaml:"addr"`
	PublicDir string `yaml:"public_dir"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type SiteConfig struct {
	BaseURL string `yaml:"base_url"`
}

const (
	DefaultAddr        = ":3000"
	DefaultDatabaseURL = "mongodb://127.0.0.1:27017/blogDB"
	DefaultPublicDir   = "public"
)

// Load builds the config from defaults, then the YAML file at path (if
// path is non-empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:      DefaultAddr,
			PublicDir: DefaultPublicDir,
		},
		Database: DatabaseConfig{URL: DefaultDatabaseURL},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse config")
		}
	}

	cfg.Server.Addr = getEnv("PUBLIC_ADDR", cfg.Server.Addr)
	cfg.Server.PublicDir = getEnv("PUBLIC_DIR", cfg.Server.PublicDir)
	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Site.BaseURL = getEnv("SITE_BASE_URL", cfg.Site.BaseURL)
	cfg.Content.Title = getEnv("SITE_TITLE", cfg.Content.Title)

	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = baseURLFromAddr(cfg.Server.Addr)
	}
	cfg.Content = cfg.Content.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server address is required (set PUBLIC_ADDR or server.addr)")
	}
	if c.Database.URL == "" {
		return errors.New("database url is required (set DATABASE_URL or database.url)")
	}
	if _, _, err := blog.SplitDatabaseURL(c.Database.URL); err != nil {
		return err
	}
	return nil
}

func baseURLFromAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return strings.TrimRight(addr, "/")
	}

	host := ""
	port := ""
	if strings.HasPrefix(addr, ":") {
		host = "localhost"
		port = strings.TrimPrefix(addr, ":")
	} else {
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			port = p
		} else {
			host = addr
		}
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port != "" {
		return "http://" + host + ":" + port
	}
	return "http://" + host
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
