package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PaymentType is the payment method requested by the caller.
//
// CreditCard exists in the enum but has no processing path yet; the create
// use case rejects it explicitly instead of silently skipping the provider.

type PaymentType string

const (
	PaymentTypeMercadoPago PaymentType = "mercado_pago"
	PaymentTypeCreditCard  PaymentType = "credit_card"
)

// PaymentStatus represents the payment lifecycle.
//
// Transitions:
//   - pending -> approved (Confirm)
//   - pending -> refused  (Refuse)
//
// approved and refused are terminal.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRefused  PaymentStatus = "refused"
)

var (
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrPaymentAlreadyPaid   = errors.New("payment already paid")
)

// Payment is the aggregate root persisted by the payment-service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Invariants enforced here:
//   - Amount is fixed at construction.
//   - PaidAt is set exactly once, by Confirm, and only while unpaid.
//   - A paid payment accepts no further transition.

type Payment struct {
	ID        uuid.UUID     `json:"id"`
	OrderID   uuid.UUID     `json:"order_id"`
	Type      PaymentType   `json:"type"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`

	events []DomainEvent
}

// NewPayment builds a pending payment for an order.
//
// The amount must come from the order record, never from the HTTP caller.
func NewPayment(orderID uuid.UUID, paymentType PaymentType, amount float64) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}
	if orderID == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	p := &Payment{
		ID:        uuid.New(),
		OrderID:   orderID,
		Type:      paymentType,
		Amount:    amount,
		Status:    PaymentStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	p.record(PaymentCreatedEvent{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		CreatedAt: p.CreatedAt,
		Type:      p.Type,
		Amount:    p.Amount,
	})

	return p, nil
}

// Confirm approves the payment and stamps PaidAt.
func (p *Payment) Confirm() error {
	if p.PaidAt != nil {
		return ErrPaymentAlreadyPaid
	}

	now := time.Now().UTC()
	p.PaidAt = &now
	p.Status = PaymentStatusApproved

	p.record(PaymentConfirmedDomainEvent{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		PaidAt:    now,
		Type:      p.Type,
		Amount:    p.Amount,
	})

	return nil
}

// Refuse marks the payment as refused. PaidAt stays unset.
func (p *Payment) Refuse() error {
	if p.PaidAt != nil {
		return ErrPaymentAlreadyPaid
	}

	p.Status = PaymentStatusRefused

	p.record(PaymentRefusedEvent{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		RefusedAt: time.Now().UTC(),
		Type:      p.Type,
		Amount:    p.Amount,
	})

	return nil
}

func (p *Payment) IsConfirmed() bool {
	return p.Status == PaymentStatusApproved
}

// Events returns the domain events recorded since construction or the last
// ClearEvents call. They are an in-process audit trail consumed by the owning
// transaction, not the integration events published to other services.
func (p *Payment) Events() []DomainEvent {
	return p.events
}

func (p *Payment) ClearEvents() {
	p.events = nil
}

func (p *Payment) record(e DomainEvent) {
	p.events = append(p.events, e)
}
