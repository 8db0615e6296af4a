package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const CallbackPath = "/slack/oauth/callback"

type Config struct {
	Port         int    `envconfig:"PORT" default:"3000"`
	BaseURL      string `envconfig:"BASE_URL"`
	ClientID     string `envconfig:"SLACK_CLIENT_ID"`
	ClientSecret string `envconfig:"SLACK_CLIENT_SECRET"`
	BotToken     string `envconfig:"SLACK_BOT_TOKEN"`

	TokensFile   string `envconfig:"TOKENS_FILE" default:"tokens.json"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	NgrokToken   string `envconfig:"NGROK_AUTHTOKEN"`
	APIURL       string `envconfig:"SLACK_API_URL" default:"https://slack.com/api/"`
	AuthorizeURL string `envconfig:"SLACK_AUTHORIZE_URL" default:"https://slack.com/oauth/v2/authorize"`

	// BaseURLDefaulted is true when BASE_URL was not set and localhost is used.
	BaseURLDefaulted bool `ignored:"true"`
}

// Load builds the process configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURLDefaulted = true
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// WithBaseURL returns a copy of cfg pointing at a different public URL.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = strings.TrimRight(baseURL, "/")
	c.BaseURLDefaulted = false
	return c
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) RedirectURI() string {
	return c.BaseURL + CallbackPath
}
