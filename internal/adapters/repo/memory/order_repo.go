package memory

import (
	"context"
	"strings"

	"github.com/phenrril/retailq/internal/domain"
)

type OrderRepo struct{ items []domain.Order }

func NewOrderRepo(items []domain.Order) *OrderRepo {
	r := &OrderRepo{items: make([]domain.Order, len(items))}
	copy(r.items, items)
	return r
}

func (r *OrderRepo) All(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(r.items))
	copy(out, r.items)
	return out, nil
}

// List filtra por texto (cliente, id, email) y estado. Un estado desconocido es un
// error de filtro; "all" o vacío no filtra.
func (r *OrderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	if s := strings.ToLower(strings.TrimSpace(f.Status)); s != "" && s != domain.FilterAll && !domain.OrderStatus(s).Valid() {
		return nil, domain.ErrInvalidFilter
	}
	return domain.SearchOrders(r.items, f), nil
}
