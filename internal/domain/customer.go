package domain

import "time"

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

func (s CustomerStatus) Valid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

type Customer struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Email       string         `yaml:"email" json:"email"`
	Phone       string         `yaml:"phone" json:"phone"`
	TotalOrders int            `yaml:"totalOrders" json:"totalOrders"`
	TotalSpent  float64        `yaml:"totalSpent" json:"totalSpent"`
	LastOrder   time.Time      `yaml:"lastOrder" json:"lastOrder"`
	Status      CustomerStatus `yaml:"status" json:"status"`
	Avatar      string         `yaml:"avatar,omitempty" json:"avatar,omitempty"`
}

type CustomerFilter struct {
	Query  string
	Status string
}

type CustomerStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	LifetimeValue float64 `json:"lifetimeValue"`
}
