package usecase

import (
	"context"
	"sort"

	"github.com/phenrril/retailq/internal/domain"
)

const (
	lowStockThreshold = 5
	topCustomersLimit = 5
)

type CategoryShare struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type TopCustomer struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Spent  float64 `json:"spent"`
	Orders int     `json:"orders"`
}

type Summary struct {
	Revenue       float64          `json:"revenue"`
	OrdersCount   int              `json:"ordersCount"`
	AvgOrderValue float64          `json:"avgOrderValue"`
	StatusCounts  map[string]int   `json:"statusCounts"`
	ActiveCount   int              `json:"activeCustomers"`
	TopCustomers  []TopCustomer    `json:"topCustomers"`
	Categories    []CategoryShare  `json:"categories"`
	LowStock      []domain.Product `json:"lowStock"`
}

type AnalyticsUC struct {
	Products  domain.ProductRepo
	Orders    domain.OrderRepo
	Customers domain.CustomerRepo
}

// Summary arma el tablero de analítica sobre los datos fijos. Las cancelaciones no
// suman a la facturación.
func (uc *AnalyticsUC) Summary(ctx context.Context) (*Summary, error) {
	orders, err := uc.Orders.All(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.Customers.All(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.Products.All(ctx)
	if err != nil {
		return nil, err
	}

	s := &Summary{StatusCounts: map[string]int{}, TopCustomers: []TopCustomer{}, Categories: []CategoryShare{}, LowStock: []domain.Product{}}
	billed := 0
	for _, o := range orders {
		s.StatusCounts[string(o.Status)]++
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		s.Revenue += o.Total
		billed++
	}
	s.OrdersCount = len(orders)
	if billed > 0 {
		s.AvgOrderValue = round2(s.Revenue / float64(billed))
	}

	for _, c := range customers {
		if c.Status == domain.CustomerStatusActive {
			s.ActiveCount++
		}
		s.TopCustomers = append(s.TopCustomers, TopCustomer{ID: c.ID, Name: c.Name, Spent: c.TotalSpent, Orders: c.TotalOrders})
	}
	sort.SliceStable(s.TopCustomers, func(i, j int) bool {
		if s.TopCustomers[i].Spent == s.TopCustomers[j].Spent {
			return s.TopCustomers[i].Orders > s.TopCustomers[j].Orders
		}
		return s.TopCustomers[i].Spent > s.TopCustomers[j].Spent
	})
	if len(s.TopCustomers) > topCustomersLimit {
		s.TopCustomers = s.TopCustomers[:topCustomersLimit]
	}

	catCount := map[string]int{}
	order := []string{}
	for _, p := range products {
		if _, ok := catCount[p.Category]; !ok {
			order = append(order, p.Category)
		}
		catCount[p.Category]++
		if p.InStock && p.StockCount <= lowStockThreshold {
			s.LowStock = append(s.LowStock, p)
		}
	}
	for _, name := range order {
		pct := 0.0
		if len(products) > 0 {
			pct = round2(float64(catCount[name]) * 100 / float64(len(products)))
		}
		s.Categories = append(s.Categories, CategoryShare{Name: name, Count: catCount[name], Percent: pct})
	}
	sort.SliceStable(s.Categories, func(i, j int) bool { return s.Categories[i].Count > s.Categories[j].Count })
	return s, nil
}
