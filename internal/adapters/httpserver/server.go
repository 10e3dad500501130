package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/retailq/internal/adapters/export"
	"github.com/phenrril/retailq/internal/domain"
	"github.com/phenrril/retailq/internal/money"
	"github.com/phenrril/retailq/internal/usecase"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// statusClientClosedRequest es el código no estándar de nginx para un cliente que cortó.
	statusClientClosedRequest = 499
)

type Server struct {
	mux       *http.ServeMux
	products  *usecase.ProductUC
	orders    *usecase.OrderUC
	customers *usecase.CustomerUC
	analytics *usecase.AnalyticsUC
	compare   *usecase.CompareUC
	chat      *usecase.ChatResponder
	currency  money.Currency
}

func New(p *usecase.ProductUC, o *usecase.OrderUC, c *usecase.CustomerUC, a *usecase.AnalyticsUC, cmp *usecase.CompareUC, chat *usecase.ChatResponder, currency money.Currency) http.Handler {
	s := &Server{mux: http.NewServeMux(), products: p, orders: o, customers: c, analytics: a, compare: cmp, chat: chat, currency: currency}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	s.mux.HandleFunc("GET /api/home", s.apiHome)
	s.mux.HandleFunc("GET /api/products", s.apiProducts)
	s.mux.HandleFunc("GET /api/products/{id}", s.apiProductByID)
	s.mux.HandleFunc("GET /api/categories", s.apiCategories)

	s.mux.HandleFunc("GET /api/orders", s.apiOrders)
	s.mux.HandleFunc("GET /api/orders/stats", s.apiOrderStats)
	s.mux.HandleFunc("GET /api/customers", s.apiCustomers)
	s.mux.HandleFunc("GET /api/customers/stats", s.apiCustomerStats)
	s.mux.HandleFunc("GET /api/analytics", s.apiAnalytics)

	// Comparación: una selección por sesión
	s.mux.HandleFunc("GET /api/compare/{session}", s.apiCompareView)
	s.mux.HandleFunc("DELETE /api/compare/{session}", s.apiCompareClear)
	s.mux.HandleFunc("POST /api/compare/{session}/add", s.apiCompareAdd)
	s.mux.HandleFunc("POST /api/compare/{session}/remove", s.apiCompareRemove)
	s.mux.HandleFunc("GET /api/compare/{session}/available", s.apiCompareAvailable)

	s.mux.HandleFunc("GET /api/chat/greeting", s.apiChatGreeting)
	s.mux.HandleFunc("POST /api/chat", s.apiChat)

	s.mux.HandleFunc("GET /api/export/{file}", s.apiExport)
}

type productView struct {
	domain.Product
	Discount     int    `json:"discount"`
	DisplayPrice string `json:"displayPrice"`
}

func (s *Server) formatter(r *http.Request) money.Formatter {
	if c := r.URL.Query().Get("currency"); c != "" {
		return money.Formatter{Currency: money.ParseCurrency(c)}
	}
	return money.Formatter{Currency: s.currency}
}

func views(list []domain.Product, f money.Formatter) []productView {
	out := make([]productView, 0, len(list))
	for _, p := range list {
		out = append(out, productView{Product: p, Discount: p.Discount(), DisplayPrice: f.Price(p.Price)})
	}
	return out
}

func (s *Server) apiHome(w http.ResponseWriter, r *http.Request) {
	f := s.formatter(r)
	featured, err := s.products.FeaturedProducts(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	trending, err := s.products.TrendingProducts(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"featured": views(featured, f), "trending": views(trending, f)})
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	page, _ := strconv.Atoi(qv.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(qv.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	f := domain.ProductFilter{
		Query:    qv.Get("q"),
		Category: qv.Get("category"),
		Brand:    qv.Get("brand"),
		InStock:  parseFlag(qv.Get("in_stock")),
		Trending: parseFlag(qv.Get("trending")),
		Featured: parseFlag(qv.Get("featured")),
		Sort:     qv.Get("sort"),
		Page:     page,
		PageSize: pageSize,
	}
	list, total, err := s.products.List(r.Context(), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	pages := (int(total) + (pageSize - 1)) / pageSize
	if pages == 0 {
		pages = 1
	}
	writeJSON(w, 200, map[string]any{"items": views(list, s.formatter(r)), "total": total, "page": page, "pages": pages})
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	p, err := s.products.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	f := s.formatter(r)
	writeJSON(w, 200, productView{Product: *p, Discount: p.Discount(), DisplayPrice: f.Price(p.Price)})
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.products.Categories(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, cats)
}

func (s *Server) apiOrders(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	list, err := s.orders.List(r.Context(), domain.OrderFilter{Query: qv.Get("q"), Status: qv.Get("status")})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
}

func (s *Server) apiOrderStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.orders.Stats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"stats": st, "revenueDisplay": s.formatter(r).Price(st.Revenue)})
}

func (s *Server) apiCustomers(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	list, err := s.customers.List(r.Context(), domain.CustomerFilter{Query: qv.Get("q"), Status: qv.Get("status")})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
}

func (s *Server) apiCustomerStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.customers.Stats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, st)
}

func (s *Server) apiAnalytics(w http.ResponseWriter, r *http.Request) {
	sum, err := s.analytics.Summary(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"summary": sum, "revenueDisplay": s.formatter(r).Price(sum.Revenue)})
}

// --- Comparación ---

func (s *Server) apiCompareView(w http.ResponseWriter, r *http.Request) {
	v, err := s.compare.View(r.Context(), r.PathValue("session"), s.formatter(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, v)
}

func (s *Server) apiCompareClear(w http.ResponseWriter, r *http.Request) {
	s.compare.Clear(r.Context(), r.PathValue("session"))
	w.WriteHeader(http.StatusNoContent)
}

type compareReq struct {
	ID string `json:"id"`
}

func (s *Server) apiCompareAdd(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.ID) == "" {
		http.Error(w, "json", 400)
		return
	}
	session := r.PathValue("session")
	changed, err := s.compare.Add(r.Context(), session, req.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeComparison(w, r, session, changed)
}

func (s *Server) apiCompareRemove(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return
	}
	session := r.PathValue("session")
	changed := s.compare.Remove(r.Context(), session, req.ID)
	s.writeComparison(w, r, session, changed)
}

func (s *Server) writeComparison(w http.ResponseWriter, r *http.Request, session string, changed bool) {
	v, err := s.compare.View(r.Context(), session, s.formatter(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"changed": changed, "comparison": v})
}

func (s *Server) apiCompareAvailable(w http.ResponseWriter, r *http.Request) {
	list, err := s.compare.Available(r.Context(), r.PathValue("session"), r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, views(list, s.formatter(r)))
}

// --- Chat ---

func (s *Server) apiChatGreeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, s.chat.Greeting())
}

func (s *Server) apiChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return
	}
	msg, err := s.chat.Reply(r.Context(), req.Message)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, 200, msg)
}

// --- Exportación ---

func (s *Server) apiExport(w http.ResponseWriter, r *http.Request) {
	f := s.formatter(r)
	var buf bytes.Buffer
	var err error
	file := r.PathValue("file")
	switch file {
	case "orders.xlsx":
		var list []domain.Order
		list, err = s.orders.List(r.Context(), domain.OrderFilter{Query: r.URL.Query().Get("q"), Status: r.URL.Query().Get("status")})
		if err == nil {
			err = export.Orders(&buf, list, f)
		}
	case "customers.xlsx":
		var list []domain.Customer
		list, err = s.customers.List(r.Context(), domain.CustomerFilter{Query: r.URL.Query().Get("q"), Status: r.URL.Query().Get("status")})
		if err == nil {
			err = export.Customers(&buf, list, f)
		}
	case "compare.xlsx":
		var m usecase.Matrix
		m, err = s.compare.Matrix(r.Context(), s.compare.Selected(r.URL.Query().Get("session")), f)
		if err == nil {
			err = export.Comparison(&buf, m)
		}
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidFilter):
		http.Error(w, "filtro", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyMessage):
		http.Error(w, "mensaje", http.StatusBadRequest)
	case errors.Is(err, r.Context().Err()) && r.Context().Err() != nil:
		// el cliente se fue: nadie lee la respuesta, pero el access log ve el 499
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("request cancelled")
		w.WriteHeader(statusClientClosedRequest)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Str("request_id", RequestIDFrom(r.Context())).Msg("handler")
		http.Error(w, "err", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func parseFlag(v string) *bool {
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
