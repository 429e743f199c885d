package config

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary Primary      `koanf:"primary"`
	Server  ServerConfig `koanf:"server"`
	PayPal  PayPalConfig `koanf:"paypal"`
	CORS    CORSConfig   `koanf:"cors"`
	Logger  LoggerConfig `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// PayPalConfig selects the processor environment and carries the API
// credentials. ClientID and Secret are intentionally not required at load
// time: the hosting platform injects them, and their absence must surface
// as a per-request configuration error rather than a boot failure.
type PayPalConfig struct {
	Env         string        `koanf:"env" validate:"required,oneof=sandbox live"`
	ClientID    string        `koanf:"client_id"`
	Secret      string        `koanf:"secret"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

// HasCredentials reports whether both halves of the credential pair are set.
func (c PayPalConfig) HasCredentials() bool {
	return c.ClientID != "" && c.Secret != ""
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	TrustedSuffix  string   `koanf:"trusted_suffix"`
	DefaultSite    string   `koanf:"default_site" validate:"required"`
}

// OriginAllowed reports whether origin is in the explicit allow-list or
// whose host ends with the trusted domain suffix. Trailing slashes are
// ignored so the same predicate works for Origin headers and
// client-supplied site bases. The suffix is matched against the parsed
// host only: a site base like https://evil.example/x.teamarena.it must
// not pass on the strength of its path.
func (c CORSConfig) OriginAllowed(origin string) bool {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return false
	}
	for _, allowed := range c.AllowedOrigins {
		if origin == strings.TrimRight(allowed, "/") {
			return true
		}
	}
	if c.TrustedSuffix == "" {
		return false
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.HasSuffix(u.Hostname(), c.TrustedSuffix)
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// NewLogger builds the process logger at the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("PAYGATE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PAYGATE_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		PayPal: PayPalConfig{
			Env:         "sandbox",
			ConnTimeout: 15 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"https://www.teamarena.it",
				"https://teamarena.it",
				"http://localhost:8888",
			},
			TrustedSuffix: ".teamarena.it",
			DefaultSite:   "https://www.teamarena.it",
		},
	}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
