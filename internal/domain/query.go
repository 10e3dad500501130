package domain

import "strings"

// FieldsFunc devuelve los campos de texto sobre los que se busca en un registro.
type FieldsFunc[T any] func(T) []string

// Filter es un filtro de igualdad; devuelve false si el registro queda afuera.
type Filter[T any] func(T) bool

// Search recorre records en orden y devuelve los que contienen query (sin distinguir
// mayúsculas) en alguno de sus campos y pasan todos los filtros. La consulta se usa
// tal cual llega, sin recortar espacios; sólo "" coincide con todo. Nunca devuelve nil.
func Search[T any](records []T, query string, fields FieldsFunc[T], filters ...Filter[T]) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if q != "" && !containsAny(fields(rec), q) {
			continue
		}
		if !passes(rec, filters) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func containsAny(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func passes[T any](rec T, filters []Filter[T]) bool {
	for _, f := range filters {
		if f != nil && !f(rec) {
			return false
		}
	}
	return true
}

// Equals arma un filtro de igualdad sobre el valor que extrae get. Un valor vacío
// o "all" no filtra (devuelve nil, que Search ignora).
func Equals[T any](value string, get func(T) string) Filter[T] {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, FilterAll) {
		return nil
	}
	return func(rec T) bool { return strings.EqualFold(get(rec), v) }
}

// Flag arma un filtro sobre un booleano opcional; nil no filtra.
func Flag[T any](want *bool, get func(T) bool) Filter[T] {
	if want == nil {
		return nil
	}
	w := *want
	return func(rec T) bool { return get(rec) == w }
}

func ProductFields(p Product) []string { return []string{p.Name} }

func OrderFields(o Order) []string { return []string{o.Customer, o.ID, o.Email} }

func CustomerFields(c Customer) []string { return []string{c.Name, c.Email, c.ID} }

// SearchProducts aplica el filtro completo de catálogo: texto sobre el nombre y
// filtros de igualdad por categoría, marca, stock, tendencia y destacado.
func SearchProducts(list []Product, f ProductFilter) []Product {
	return Search(list, f.Query, ProductFields,
		Equals(f.Category, func(p Product) string { return p.Category }),
		Equals(f.Brand, func(p Product) string { return p.Brand }),
		Flag(f.InStock, func(p Product) bool { return p.InStock }),
		Flag(f.Trending, func(p Product) bool { return p.Trending }),
		Flag(f.Featured, func(p Product) bool { return p.Featured }),
	)
}

func SearchOrders(list []Order, f OrderFilter) []Order {
	return Search(list, f.Query, OrderFields,
		Equals(f.Status, func(o Order) string { return string(o.Status) }),
	)
}

func SearchCustomers(list []Customer, f CustomerFilter) []Customer {
	return Search(list, f.Query, CustomerFields,
		Equals(f.Status, func(c Customer) string { return string(c.Status) }),
	)
}
