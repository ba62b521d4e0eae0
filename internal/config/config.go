package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"tanvir.dev/internal/nav"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_SITE_TITLE
const EnvPrefix = "PORTFOLIO"

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Site       SiteConfig       `mapstructure:"site"`
	Navigation NavigationConfig `mapstructure:"navigation"`
	Content    ContentConfig    `mapstructure:"content"`

	// File is the config file that was read, empty when running on defaults
	File string `mapstructure:"-"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SiteConfig holds the site-wide labels
type SiteConfig struct {
	Title string `mapstructure:"title"`
	Owner string `mapstructure:"owner"`
	CVURL string `mapstructure:"cv_url"`
}

// NavigationConfig holds header behaviour
type NavigationConfig struct {
	HighlightSections bool `mapstructure:"highlight_sections"`
}

// ContentConfig points at an on-disk content tree. Empty means the embedded one.
type ContentConfig struct {
	Dir string `mapstructure:"dir"`
}

// ActiveRule returns the navigation highlight rule
func (c *Config) ActiveRule() nav.ActiveRule {
	if c.Navigation.HighlightSections {
		return nav.SectionMatch
	}
	return nav.ExactMatch
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("site.title", "Tanvir Khan")
	v.SetDefault("site.owner", "Tanvir Khan")
	v.SetDefault("site.cv_url", "https://drive.google.com/file/d/1Cvh29leLdWtOMXpOYLKWm5HNa9kQ5lNo/view?usp=sharing")

	v.SetDefault("navigation.highlight_sections", false)
	v.SetDefault("content.dir", "")
}

// Load reads the configuration. An explicit path must exist; without one,
// ./portfolio.yaml is used when present. Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// SERVER_ADDR is still honoured for existing deployments
	if err := v.BindEnv("server.addr", EnvPrefix+"_SERVER_ADDR", "SERVER_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind server address: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if cfg.Server.Addr == "" {
		return nil, errors.New("server.addr must not be empty")
	}
	return &cfg, nil
}
