package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/phenrril/retailq/internal/domain"
)

type CustomerRepo struct{ items []domain.Customer }

func NewCustomerRepo(items []domain.Customer) *CustomerRepo {
	r := &CustomerRepo{items: make([]domain.Customer, len(items))}
	copy(r.items, items)
	return r
}

func (r *CustomerRepo) All(ctx context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return nil, fmt.Errorf("email vacío: %w", domain.ErrNotFound)
	}
	for _, c := range r.items {
		if strings.ToLower(c.Email) == e {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CustomerRepo) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	if s := strings.ToLower(strings.TrimSpace(f.Status)); s != "" && s != domain.FilterAll && !domain.CustomerStatus(s).Valid() {
		return nil, domain.ErrInvalidFilter
	}
	return domain.SearchCustomers(r.items, f), nil
}
