package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phenrril/retailq/internal/domain"
	"github.com/phenrril/retailq/internal/money"
	"github.com/phenrril/retailq/internal/usecase"
)

func TestRenderMatrix(t *testing.T) {
	orig := 1250.0
	catalog := []domain.Product{
		{ID: "a", Name: "Alpha", Price: 1000, OriginalPrice: &orig, Brand: "Acme", InStock: true},
		{ID: "b", Name: "Beta", Price: 20},
	}
	out := renderMatrix(usecase.Project([]string{"a", "b"}, catalog, money.Formatter{Currency: money.USD}))

	assert.Contains(t, out, "Alpha (-20%)")
	assert.Contains(t, out, "Beta")
	assert.NotContains(t, out, "Beta (-")
	assert.Contains(t, out, "$1,000.00")
	assert.Contains(t, out, "Acme")
	for _, f := range usecase.CompareFeatures {
		assert.True(t, strings.Contains(out, f.Label), "missing row %s", f.Label)
	}
}
