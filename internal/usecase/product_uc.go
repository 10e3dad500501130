package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/phenrril/retailq/internal/domain"
)

const (
	featuredLimit = 3
	trendingLimit = 4
)

type ProductUC struct {
	Products domain.ProductRepo
	Featured domain.FeaturedProductRepo
}

func (uc *ProductUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	return uc.Products.List(ctx, f)
}

func (uc *ProductUC) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id vacío: %w", domain.ErrNotFound)
	}
	return uc.Products.FindByID(ctx, id)
}

func (uc *ProductUC) All(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.All(ctx)
}

func (uc *ProductUC) Categories(ctx context.Context) ([]string, error) {
	return uc.Products.DistinctCategories(ctx)
}

// --- Portada ---

func (uc *ProductUC) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	if uc.Featured == nil {
		return []domain.Product{}, nil
	}
	return uc.Featured.Featured(ctx, featuredLimit)
}

func (uc *ProductUC) TrendingProducts(ctx context.Context) ([]domain.Product, error) {
	if uc.Featured == nil {
		return []domain.Product{}, nil
	}
	return uc.Featured.Trending(ctx, trendingLimit)
}
