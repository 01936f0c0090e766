package events

import (
	"context"
	"log"

	"techfood_payment/internal/usecase/interfaces"
)

// LogPaymentEventPublisher writes integration events to the application log.
// Downstream services pick confirmations up from here until a broker is
// plugged in behind the same interface.
type LogPaymentEventPublisher struct{}

var _ interfaces.IPaymentEventPublisher = (*LogPaymentEventPublisher)(nil)

func NewLogPaymentEventPublisher() *LogPaymentEventPublisher {
	return &LogPaymentEventPublisher{}
}

func (p *LogPaymentEventPublisher) PublishPaymentConfirmed(_ context.Context, event interfaces.PaymentConfirmedEvent) error {
	log.Printf("[payment][events] payment confirmed payment_id=%s order_id=%s", event.PaymentID, event.OrderID)
	return nil
}
