package usecase

import (
	"context"

	"github.com/phenrril/retailq/internal/domain"
)

type OrderUC struct {
	Orders domain.OrderRepo
}

func (uc *OrderUC) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	return uc.Orders.List(ctx, f)
}

// Stats resume todas las órdenes, sin tener en cuenta filtros.
func (uc *OrderUC) Stats(ctx context.Context) (domain.OrderStats, error) {
	all, err := uc.Orders.All(ctx)
	if err != nil {
		return domain.OrderStats{}, err
	}
	st := domain.OrderStats{Total: len(all)}
	for _, o := range all {
		switch o.Status {
		case domain.OrderStatusPending:
			st.Pending++
		case domain.OrderStatusProcessing:
			st.Processing++
		}
		st.Revenue += o.Total
	}
	return st, nil
}
