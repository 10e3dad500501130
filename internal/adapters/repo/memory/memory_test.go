package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/retailq/internal/adapters/fixtures"
	"github.com/phenrril/retailq/internal/domain"
)

func loadData(t *testing.T) *fixtures.Data {
	t.Helper()
	d, err := fixtures.Load("")
	require.NoError(t, err)
	return d
}

func ids(ps []domain.Product) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestProductRepoListSortAndFilter(t *testing.T) {
	r := NewProductRepo(loadData(t).Products)
	ctx := context.Background()

	tests := []struct {
		name string
		f    domain.ProductFilter
		want []string
	}{
		{"catalog order", domain.ProductFilter{}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"category price asc", domain.ProductFilter{Category: "electronics", Sort: "price_asc"}, []string{"7", "2", "1"}},
		{"category all", domain.ProductFilter{Category: "all", Sort: "price_desc", PageSize: 2}, []string{"3", "6"}},
		{"name query", domain.ProductFilter{Query: "WIRELESS"}, []string{"1", "7"}},
		{"second page", domain.ProductFilter{Page: 2, PageSize: 3}, []string{"4", "5", "6"}},
		{"past the end", domain.ProductFilter{Page: 9, PageSize: 3}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, total, err := r.List(ctx, tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(list))
			assert.GreaterOrEqual(t, total, int64(len(list)))
		})
	}
}

func TestProductRepoListKeepsCatalogIntact(t *testing.T) {
	r := NewProductRepo(loadData(t).Products)
	ctx := context.Background()
	_, _, err := r.List(ctx, domain.ProductFilter{Sort: "name"})
	require.NoError(t, err)
	all, err := r.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(all))
}

func TestProductRepoFindByID(t *testing.T) {
	r := NewProductRepo(loadData(t).Products)
	ctx := context.Background()

	p, err := r.FindByID(ctx, " 5 ")
	require.NoError(t, err)
	assert.Equal(t, "Premium Coffee Maker", p.Name)

	_, err = r.FindByID(ctx, "42")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.FindByID(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepoDistinctCategories(t *testing.T) {
	r := NewProductRepo(loadData(t).Products)
	cats, err := r.DistinctCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Fashion", "Home & Office", "Photography"}, cats)
}

func TestFeaturedProductRepo(t *testing.T) {
	r := NewFeaturedProductRepo(NewProductRepo(loadData(t).Products))
	ctx := context.Background()

	all, err := r.Featured(ctx, 0)
	require.NoError(t, err)
	for _, p := range all {
		assert.True(t, p.Featured)
	}
	two, err := r.Featured(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, ids(all)[:2], ids(two))

	trending, err := r.Trending(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(trending))
}

func TestOrderRepoList(t *testing.T) {
	r := NewOrderRepo(loadData(t).Orders)
	ctx := context.Background()

	list, err := r.List(ctx, domain.OrderFilter{Status: "DELIVERED"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-001", list[0].ID)
	assert.Equal(t, "ORD-005", list[1].ID)

	list, err = r.List(ctx, domain.OrderFilter{Query: "ord-00", Status: "All"})
	require.NoError(t, err)
	assert.Len(t, list, 6)

	_, err = r.List(ctx, domain.OrderFilter{Status: "refunded"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestCustomerRepo(t *testing.T) {
	r := NewCustomerRepo(loadData(t).Customers)
	ctx := context.Background()

	c, err := r.FindByEmail(ctx, "PRIYA@email.com")
	require.NoError(t, err)
	assert.Equal(t, "CUST-002", c.ID)
	_, err = r.FindByEmail(ctx, "nobody@email.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.FindByEmail(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := r.List(ctx, domain.CustomerFilter{Query: "cust-001"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rajesh Kumar", list[0].Name)

	_, err = r.List(ctx, domain.CustomerFilter{Status: "vip"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}
