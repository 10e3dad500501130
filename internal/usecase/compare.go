package usecase

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/phenrril/retailq/internal/domain"
	"github.com/phenrril/retailq/internal/money"
)

// Placeholder se muestra cuando un valor falta.
const Placeholder = "-"

type FeatureKind string

const (
	KindPrice  FeatureKind = "price"
	KindText   FeatureKind = "text"
	KindRating FeatureKind = "rating"
	KindNumber FeatureKind = "number"
	KindBool   FeatureKind = "boolean"
	KindTags   FeatureKind = "tags"
)

type Feature struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Kind  FeatureKind `json:"kind"`

	value func(domain.Product) any
}

// CompareFeatures define filas y orden de la tabla comparativa.
var CompareFeatures = []Feature{
	{Key: "price", Label: "Price", Kind: KindPrice, value: func(p domain.Product) any { return p.Price }},
	{Key: "originalPrice", Label: "Original Price", Kind: KindPrice, value: func(p domain.Product) any {
		if p.OriginalPrice == nil {
			return nil
		}
		return *p.OriginalPrice
	}},
	{Key: "brand", Label: "Brand", Kind: KindText, value: func(p domain.Product) any { return p.Brand }},
	{Key: "category", Label: "Category", Kind: KindText, value: func(p domain.Product) any { return p.Category }},
	{Key: "rating", Label: "Rating", Kind: KindRating, value: func(p domain.Product) any { return p.Rating }},
	{Key: "reviews", Label: "Reviews", Kind: KindNumber, value: func(p domain.Product) any { return p.Reviews }},
	{Key: "stockCount", Label: "Stock", Kind: KindNumber, value: func(p domain.Product) any { return p.StockCount }},
	{Key: "inStock", Label: "Available", Kind: KindBool, value: func(p domain.Product) any { return p.InStock }},
}

var tagsFeature = Feature{Key: "tags", Label: "Tags", Kind: KindTags, value: func(p domain.Product) any { return p.Tags }}

type Cell struct {
	Text   string  `json:"text"`
	Number float64 `json:"number,omitempty"`
	Bool   bool    `json:"bool,omitempty"`
	Empty  bool    `json:"empty,omitempty"`
}

type Column struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Image    string `json:"image"`
	Trending bool   `json:"trending"`
	Discount int    `json:"discount"`
}

type Row struct {
	Feature Feature `json:"feature"`
	Cells   []Cell  `json:"cells"`
}

// Matrix es la tabla comparativa: una columna por producto y una fila por característica.
type Matrix struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func (m Matrix) Empty() bool { return len(m.Columns) == 0 }

// Project resuelve los ids seleccionados contra el catálogo (ignorando los que no
// existen) y arma la matriz. Sin productos resueltos la matriz queda vacía.
func Project(selection []string, catalog []domain.Product, f money.Formatter) Matrix {
	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	products := make([]domain.Product, 0, len(selection))
	for _, id := range selection {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		}
	}

	m := Matrix{Columns: []Column{}, Rows: []Row{}}
	if len(products) == 0 {
		return m
	}
	for _, p := range products {
		m.Columns = append(m.Columns, Column{
			ID:       p.ID,
			Name:     p.Name,
			Brand:    p.Brand,
			Image:    p.Image,
			Trending: p.Trending,
			Discount: p.Discount(),
		})
	}
	features := append(append([]Feature{}, CompareFeatures...), tagsFeature)
	for _, feat := range features {
		row := Row{Feature: feat, Cells: make([]Cell, 0, len(products))}
		for _, p := range products {
			row.Cells = append(row.Cells, renderCell(feat, p, f))
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

func renderCell(feat Feature, p domain.Product, f money.Formatter) Cell {
	v := feat.value(p)
	switch feat.Kind {
	case KindPrice:
		amount, _ := v.(float64)
		if v == nil || amount == 0 {
			return Cell{Text: Placeholder, Empty: true}
		}
		return Cell{Text: f.Price(amount), Number: amount}
	case KindRating:
		r, _ := v.(float64)
		return Cell{Text: "★ " + strconv.FormatFloat(r, 'f', -1, 64), Number: r}
	case KindBool:
		b, _ := v.(bool)
		if b {
			return Cell{Text: "✓", Bool: true}
		}
		return Cell{Text: "✗"}
	case KindNumber:
		n, _ := v.(int)
		return Cell{Text: humanize.Comma(int64(n)), Number: float64(n)}
	case KindTags:
		tags, _ := v.([]string)
		if len(tags) == 0 {
			return Cell{Text: Placeholder, Empty: true}
		}
		return Cell{Text: strings.Join(tags, ", ")}
	default:
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return Cell{Text: Placeholder, Empty: true}
		}
		return Cell{Text: s}
	}
}

// Discount es el porcentaje de descuento del producto, 0 si no corresponde.
func Discount(p domain.Product) int { return p.Discount() }
