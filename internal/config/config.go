package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/retailq/internal/money"
	"github.com/phenrril/retailq/internal/usecase"
)

type Config struct {
	Port         string
	AppEnv       string
	LogLevel     zerolog.Level
	Currency     money.Currency
	ChatDelay    time.Duration
	FixturesPath string
}

func (c Config) IsDev() bool {
	return c.AppEnv == "" || c.AppEnv == "development" || c.AppEnv == "dev"
}

// Load lee .env (si existe) y después las variables de entorno. Los valores
// inválidos vuelven al default con un warning.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)

	cfg := Config{
		Port:         "8080",
		AppEnv:       strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))),
		LogLevel:     zerolog.InfoLevel,
		Currency:     money.ParseCurrency(os.Getenv("CURRENCY")),
		ChatDelay:    usecase.DefaultChatDelay,
		FixturesPath: strings.TrimSpace(os.Getenv("FIXTURES_PATH")),
	}
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	}
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			log.Warn().Str("LOG_LEVEL", raw).Msg("nivel de log inválido, uso info")
		} else {
			cfg.LogLevel = lvl
		}
	}
	if raw := strings.TrimSpace(os.Getenv("CHAT_DELAY")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			log.Warn().Str("CHAT_DELAY", raw).Msg("demora de chat inválida, uso default")
		} else {
			cfg.ChatDelay = d
		}
	}
	return cfg
}
