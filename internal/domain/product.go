package domain

import (
	"math"
	"strings"
)

type Product struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description" json:"description"`
	Price         float64  `yaml:"price" json:"price"`
	OriginalPrice *float64 `yaml:"originalPrice" json:"originalPrice,omitempty"`
	Category      string   `yaml:"category" json:"category"`
	Brand         string   `yaml:"brand" json:"brand"`
	Rating        float64  `yaml:"rating" json:"rating"`
	Reviews       int      `yaml:"reviews" json:"reviews"`
	Image         string   `yaml:"image" json:"image"`
	InStock       bool     `yaml:"inStock" json:"inStock"`
	StockCount    int      `yaml:"stockCount" json:"stockCount"`
	Tags          []string `yaml:"tags" json:"tags"`
	Trending      bool     `yaml:"trending" json:"trending"`
	Featured      bool     `yaml:"featured" json:"featured"`
}

// Discount devuelve el porcentaje de descuento redondeado respecto del precio original.
// Sin precio original, o con uno que no supera al precio actual, es 0.
func (p Product) Discount() int {
	if p.OriginalPrice == nil {
		return 0
	}
	orig := *p.OriginalPrice
	if orig <= p.Price || orig <= 0 {
		return 0
	}
	return int(math.Round((orig - p.Price) / orig * 100))
}

// HasTag informa si el producto tiene la etiqueta (sin distinguir mayúsculas).
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type ProductFilter struct {
	Query    string
	Category string
	Brand    string
	InStock  *bool
	Trending *bool
	Featured *bool
	Sort     string
	Page     int
	PageSize int
}
