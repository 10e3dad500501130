package usecase

import (
	"github.com/phenrril/retailq/internal/domain"
)

// Available devuelve los productos del catálogo que todavía no están seleccionados y
// cuyo nombre contiene query, hasta limit elementos (limit <= 0 no recorta).
func Available(catalog []domain.Product, sel *SelectionSet, query string, limit int) []domain.Product {
	notSelected := func(p domain.Product) bool { return sel == nil || !sel.Contains(p.ID) }
	out := domain.Search(catalog, query, domain.ProductFields, notSelected)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
