package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/reasoning"
)

const (
	EnvAPIKey           = "GEMINI_API_KEY"
	EnvReasoningURL     = "UNO_REASONING_URL"
	EnvReasoningModel   = "UNO_REASONING_MODEL"
	EnvReasoningTimeout = "UNO_REASONING_TIMEOUT"
	EnvTCPAddr          = "UNO_TCP_ADDR"
	EnvWebsocketAddr    = "UNO_WS_ADDR"
	EnvMessageDelay     = "UNO_MESSAGE_DELAY"

	defaultMessageDelay = 300 * time.Millisecond
)

type Config struct {
	APIKey           string
	ReasoningURL     string
	ReasoningModel   string
	ReasoningTimeout time.Duration
	TCPAddr          string
	WebsocketAddr    string
	MessageDelay     time.Duration
}

// Load reads the environment. A .env file in the working directory is loaded
// first, without overriding variables that are already set.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		APIKey:         strings.TrimSpace(getenv(EnvAPIKey)),
		ReasoningURL:   withDefault(getenv(EnvReasoningURL), reasoning.DefaultBaseURL),
		ReasoningModel: withDefault(getenv(EnvReasoningModel), reasoning.DefaultModel),
		TCPAddr:        strings.TrimSpace(getenv(EnvTCPAddr)),
		WebsocketAddr:  strings.TrimSpace(getenv(EnvWebsocketAddr)),
	}

	var err error
	if cfg.ReasoningTimeout, err = duration(getenv, EnvReasoningTimeout, consts.ReasoningTimeout); err != nil {
		return Config{}, err
	}
	if cfg.MessageDelay, err = duration(getenv, EnvMessageDelay, defaultMessageDelay); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Serving reports whether remote consoles should be served instead of the local one.
func (c Config) Serving() bool {
	return c.TCPAddr != "" || c.WebsocketAddr != ""
}

// HardUnlocked reports whether a credential for the reasoning service is known.
func (c Config) HardUnlocked() bool {
	return c.APIKey != ""
}

// WithAPIKey returns a copy of c using key.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = strings.TrimSpace(key)
	return c
}

// Reasoner builds the reasoning client, or returns nil without a credential.
func (c Config) Reasoner() *reasoning.Client {
	if !c.HardUnlocked() {
		return nil
	}
	return reasoning.NewClient(c.APIKey,
		reasoning.WithBaseURL(c.ReasoningURL),
		reasoning.WithModel(c.ReasoningModel),
	)
}

func withDefault(value string, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func duration(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(getenv(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", key, value)
	}
	return parsed, nil
}
