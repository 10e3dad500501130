package memory

import (
	"context"

	"github.com/phenrril/retailq/internal/domain"
)

// FeaturedProductRepo expone las vitrinas de la portada (destacados y tendencias)
// en el orden del catálogo.
type FeaturedProductRepo struct{ products *ProductRepo }

func NewFeaturedProductRepo(products *ProductRepo) *FeaturedProductRepo {
	return &FeaturedProductRepo{products: products}
}

// Featured devuelve hasta limit productos destacados (limit <= 0: todos).
func (r *FeaturedProductRepo) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.pick(func(p domain.Product) bool { return p.Featured }, limit), nil
}

// Trending devuelve hasta limit productos en tendencia (limit <= 0: todos).
func (r *FeaturedProductRepo) Trending(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.pick(func(p domain.Product) bool { return p.Trending }, limit), nil
}

func (r *FeaturedProductRepo) pick(keep func(domain.Product) bool, limit int) []domain.Product {
	out := []domain.Product{}
	for _, p := range r.products.items {
		if !keep(p) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
