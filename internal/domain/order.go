package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses en orden de visualización
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	ID       string      `yaml:"id" json:"id"`
	Customer string      `yaml:"customer" json:"customer"`
	Email    string      `yaml:"email" json:"email"`
	Products int         `yaml:"products" json:"products"`
	Total    float64     `yaml:"total" json:"total"`
	Status   OrderStatus `yaml:"status" json:"status"`
	Date     time.Time   `yaml:"date" json:"date"`
}

type OrderFilter struct {
	Query  string
	Status string
}

type OrderStats struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Processing int     `json:"processing"`
	Revenue    float64 `json:"revenue"`
}
