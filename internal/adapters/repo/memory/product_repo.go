package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/phenrril/retailq/internal/domain"
)

// ProductRepo sirve el catálogo fijo cargado al arrancar. Es de sólo lectura, así
// que se puede compartir entre goroutines sin bloqueo.
type ProductRepo struct {
	items []domain.Product
	byID  map[string]int
}

func NewProductRepo(items []domain.Product) *ProductRepo {
	r := &ProductRepo{items: make([]domain.Product, len(items)), byID: make(map[string]int, len(items))}
	copy(r.items, items)
	for i, p := range r.items {
		r.byID[p.ID] = i
	}
	return r
}

func (r *ProductRepo) All(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id vacío: %w", domain.ErrNotFound)
	}
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.items[i]
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	list := domain.SearchProducts(r.items, f)
	total := int64(len(list))
	switch f.Sort {
	case "price_desc":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case "price_asc":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case "rating":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	case "name":
		sort.SliceStable(list, func(i, j int) bool { return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name) })
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	offset := (f.Page - 1) * f.PageSize
	if offset >= len(list) {
		return []domain.Product{}, total, nil
	}
	end := offset + f.PageSize
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], total, nil
}

func (r *ProductRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	cats := []string{}
	for _, p := range r.items {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats, nil
}
