package interfaces

import (
	"context"

	"techfood_payment/internal/domain/entities"

	"github.com/google/uuid"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// GetByID and GetByOrderID return (nil, nil) when nothing matches; storage
// failures come back as errors and are never retried here.
//
// GetByOrderID exists for webhook reconciliation: the provider notification
// only carries the order id we handed over as external reference.

type IPaymentRepository interface {
	Add(ctx context.Context, p *entities.Payment) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error)
	Update(ctx context.Context, p *entities.Payment) error
}
