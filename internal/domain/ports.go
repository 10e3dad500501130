package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidFilter = errors.New("invalid filter")
)

// FilterAll es el valor de filtro que no restringe nada.
const FilterAll = "all"

type ProductRepo interface {
	All(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type OrderRepo interface {
	All(ctx context.Context) ([]Order, error)
	List(ctx context.Context, f OrderFilter) ([]Order, error)
}

type CustomerRepo interface {
	All(ctx context.Context) ([]Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context, f CustomerFilter) ([]Customer, error)
}

type FeaturedProductRepo interface {
	Featured(ctx context.Context, limit int) ([]Product, error)
	Trending(ctx context.Context, limit int) ([]Product, error)
}
