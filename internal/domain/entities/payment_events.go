package entities

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event the Payment aggregate records.

type DomainEvent interface {
	EventName() string
}

type PaymentCreatedEvent struct {
	PaymentID uuid.UUID
	OrderID   uuid.UUID
	CreatedAt time.Time
	Type      PaymentType
	Amount    float64
}

func (PaymentCreatedEvent) EventName() string { return "payment.created" }

// PaymentConfirmedDomainEvent is the aggregate-internal confirmation record.
// The bus-published counterpart lives in the use-case layer.
type PaymentConfirmedDomainEvent struct {
	PaymentID uuid.UUID
	OrderID   uuid.UUID
	PaidAt    time.Time
	Type      PaymentType
	Amount    float64
}

func (PaymentConfirmedDomainEvent) EventName() string { return "payment.confirmed" }

type PaymentRefusedEvent struct {
	PaymentID uuid.UUID
	OrderID   uuid.UUID
	RefusedAt time.Time
	Type      PaymentType
	Amount    float64
}

func (PaymentRefusedEvent) EventName() string { return "payment.refused" }
