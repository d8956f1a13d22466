package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

const (
	DefaultUserAgent = "sample/hello-world/v1.2"
	DefaultHTTPAddr  = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLocale    = "ja-JP"
)

type Config struct {
	UserAgent     string
	HTTPAddr      string
	LogLevel      string
	LogFormat     string
	DefaultLocale string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel : Lambda et les conteneurs fournissent de vraies variables d'environnement.
	}

	cfg := &Config{
		UserAgent:     os.Getenv("SKILL_USER_AGENT"),
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique les valeurs par défaut et rejette celles avec lesquelles le skill ne peut pas démarrer.
func (c *Config) validate() error {
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = DefaultUserAgent
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	if _, _, err := net.SplitHostPort(c.HTTPAddr); err != nil {
		return fmt.Errorf("config: HTTP_ADDR invalide (%q): %w", c.HTTPAddr, err)
	}

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL invalide (%q): %w", c.LogLevel, err)
	}

	switch strings.TrimSpace(c.LogFormat) {
	case "":
		c.LogFormat = DefaultLogFormat
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_FORMAT doit valoir json ou console (%q)", c.LogFormat)
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = DefaultLocale
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, err)
	}

	return nil
}
