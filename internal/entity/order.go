package domain

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// ParseStatus maps an external status string onto the known enumeration.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusDelivered, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// OrderItem carries a bare food reference; the food record is resolved only
// on read (see PopulatedItem).
type OrderItem struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID          string      `json:"_id"`
	UserID      string      `json:"userId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Address     string      `json:"address"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PopulatedItem is an order line after its food reference has been resolved
// to the full food record.
type PopulatedItem struct {
	Food     Food `json:"foodId"`
	Quantity int  `json:"quantity"`
}

// PopulatedOrder is what order history returns: the same order with items
// resolved for display.
type PopulatedOrder struct {
	ID          string          `json:"_id"`
	UserID      string          `json:"userId"`
	Items       []PopulatedItem `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
	Address     string          `json:"address"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Validate checks the required order fields in a fixed order: items, then
// totalAmount, then address. First failure wins, and every failure collapses
// into the single ErrMissingFields; the three checks are not distinguished
// in the response.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrMissingFields
	}
	for _, it := range o.Items {
		if it.FoodID == "" || it.Quantity == 0 {
			return ErrMissingFields
		}
	}
	if o.TotalAmount == 0 {
		return ErrMissingFields
	}
	if strings.TrimSpace(o.Address) == "" {
		return ErrMissingFields
	}
	return nil
}
