package service

// CreateOrderRequest is the storefront's request for a gateway order.
// Amount is in rupees.
type CreateOrderRequest struct {
	Amount float64 `json:"amount"`
}
