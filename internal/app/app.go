package app

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/retailq/internal/adapters/fixtures"
	"github.com/phenrril/retailq/internal/adapters/httpserver"
	"github.com/phenrril/retailq/internal/adapters/repo/memory"
	"github.com/phenrril/retailq/internal/config"
	"github.com/phenrril/retailq/internal/money"
	"github.com/phenrril/retailq/internal/usecase"
)

type App struct {
	Config      config.Config
	ProductUC   *usecase.ProductUC
	OrderUC     *usecase.OrderUC
	CustomerUC  *usecase.CustomerUC
	AnalyticsUC *usecase.AnalyticsUC
	CompareUC   *usecase.CompareUC
	Chat        *usecase.ChatResponder
}

// NewApp carga los fixtures una sola vez y arma los casos de uso sobre ellos.
func NewApp(cfg config.Config) (*App, error) {
	data, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		return nil, err
	}
	return NewFromData(cfg, data), nil
}

func NewFromData(cfg config.Config, data *fixtures.Data) *App {
	prodRepo := memory.NewProductRepo(data.Products)
	featuredRepo := memory.NewFeaturedProductRepo(prodRepo)
	orderRepo := memory.NewOrderRepo(data.Orders)
	custRepo := memory.NewCustomerRepo(data.Customers)

	app := &App{Config: cfg}
	app.ProductUC = &usecase.ProductUC{Products: prodRepo, Featured: featuredRepo}
	app.OrderUC = &usecase.OrderUC{Orders: orderRepo}
	app.CustomerUC = &usecase.CustomerUC{Customers: custRepo}
	app.AnalyticsUC = &usecase.AnalyticsUC{Products: prodRepo, Orders: orderRepo, Customers: custRepo}
	app.CompareUC = usecase.NewCompareUC(prodRepo)
	app.Chat = usecase.NewChatResponder(cfg.ChatDelay)

	log.Info().
		Int("products", len(data.Products)).
		Int("orders", len(data.Orders)).
		Int("customers", len(data.Customers)).
		Msg("fixtures cargados")
	return app
}

func (a *App) Formatter() money.Formatter {
	return money.Formatter{Currency: a.Config.Currency}
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ProductUC, a.OrderUC, a.CustomerUC, a.AnalyticsUC, a.CompareUC, a.Chat, a.Config.Currency)
}
