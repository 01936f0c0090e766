package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// PaymentConfirmedEvent is the integration event consumed by downstream
// services (order fulfillment) once a payment is approved.
type PaymentConfirmedEvent struct {
	PaymentID uuid.UUID `json:"payment_id"`
	OrderID   uuid.UUID `json:"order_id"`
}

// IPaymentEventPublisher publishes integration events to the platform bus.
// The transport behind it is a collaborator concern; the use cases only
// guarantee publish-after-persist ordering.
type IPaymentEventPublisher interface {
	PublishPaymentConfirmed(ctx context.Context, event PaymentConfirmedEvent) error
}
