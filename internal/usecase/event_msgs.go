package usecase

// OrderStatusChangedMsg is the event fulfilment publishes when an order
// progresses; consumed by the kafka adapter.
type OrderStatusChangedMsg struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
