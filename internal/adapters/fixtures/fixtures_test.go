package fixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/retailq/internal/domain"
)

func TestLoadEmbedded(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Len(t, d.Products, 8)
	assert.Len(t, d.Orders, 6)
	assert.Len(t, d.Customers, 6)

	o := d.Orders[0]
	assert.Equal(t, "ORD-001", o.ID)
	assert.Equal(t, domain.OrderStatusDelivered, o.Status)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), o.Date.UTC())

	p := d.Products[0]
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 299.99, *p.OriginalPrice)
	assert.Nil(t, d.Products[1].OriginalPrice)
	assert.Equal(t, []string{"wireless", "noise-cancelling", "premium"}, p.Tags)
	assert.Empty(t, d.Customers[5].Avatar)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	raw := `
products:
  - {id: a, name: Alpha, price: 10, rating: 3, stockCount: 1, inStock: true}
orders:
  - {id: O1, customer: X, email: x@y.z, products: 1, total: 5, status: pending, date: 2024-02-01}
customers: []
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Products, 1)
	assert.Equal(t, "Alpha", d.Products[0].Name)
	assert.Empty(t, d.Customers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"duplicate id", "products:\n  - {id: a, name: A}\n  - {id: a, name: B}\n"},
		{"empty id", "products:\n  - {name: A}\n"},
		{"negative stock", "products:\n  - {id: a, stockCount: -1}\n"},
		{"rating range", "products:\n  - {id: a, rating: 6}\n"},
		{"order status", "orders:\n  - {id: O1, status: lost}\n"},
		{"customer status", "customers:\n  - {id: C1, status: banned}\n"},
		{"bad yaml", "products: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
