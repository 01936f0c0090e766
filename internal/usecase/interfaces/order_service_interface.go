package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// OrderItemResult is one line of the order snapshot.
type OrderItemResult struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
}

// OrderResult is the read-only order snapshot served by the Order service.
// This service never mutates orders; Amount is the authoritative total used
// to build the payment.
type OrderResult struct {
	ID     uuid.UUID         `json:"id"`
	Number int               `json:"number"`
	Amount float64           `json:"amount"`
	Items  []OrderItemResult `json:"items"`
}

// IOrderService fetches order snapshots from the Order service.
// A missing order returns (nil, nil).
type IOrderService interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResult, error)
}
