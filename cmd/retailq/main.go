package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/phenrril/retailq/internal/app"
	"github.com/phenrril/retailq/internal/config"
	"github.com/phenrril/retailq/internal/money"
)

var (
	envFile  string
	currency string
)

var rootCmd = &cobra.Command{
	Use:           "retailq",
	Short:         "RetailQ back office: catalog, orders, customers and product comparison",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "archivo .env a cargar (default .env)")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "", "moneda para mostrar precios (INR|USD)")
	rootCmd.AddCommand(serveCmd, compareCmd, exportCmd, chatCmd)
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := rootCmd.Execute(); err != nil {
		zlog.Fatal().Err(err).Msg("retailq")
	}
}

// loadApp lee la configuración, aplica los flags globales y arma la app.
func loadApp() (*app.App, error) {
	var cfg config.Config
	if envFile != "" {
		cfg = config.Load(envFile)
	} else {
		cfg = config.Load()
	}
	if currency != "" {
		cfg.Currency = money.ParseCurrency(currency)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	return app.NewApp(cfg)
}
