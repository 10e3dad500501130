package usecase

import (
	"context"
	"math"

	"github.com/phenrril/retailq/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

func (uc *CustomerUC) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	return uc.Customers.List(ctx, f)
}

func (uc *CustomerUC) Stats(ctx context.Context) (domain.CustomerStats, error) {
	all, err := uc.Customers.All(ctx)
	if err != nil {
		return domain.CustomerStats{}, err
	}
	st := domain.CustomerStats{Total: len(all)}
	var spent float64
	var orders int
	for _, c := range all {
		if c.Status == domain.CustomerStatusActive {
			st.Active++
		}
		spent += c.TotalSpent
		orders += c.TotalOrders
	}
	if orders > 0 {
		st.AvgOrderValue = round2(spent / float64(orders))
	}
	if len(all) > 0 {
		st.LifetimeValue = round2(spent / float64(len(all)))
	}
	return st, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
