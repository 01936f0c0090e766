package usecase

import (
	"context"
	"log"
	"strings"

	"techfood_payment/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// WebhookNotification carries the provider notification fields the webhook
// path needs. DataID holds the order id we handed to the provider as
// external reference.
type WebhookNotification struct {
	Action      string
	Type        string
	DataID      string
	DateCreated string
	UserID      int64
}

// IConfirmPaymentUseCase transitions a payment to approved.
//
// ConfirmByID is the internal command path and fails loudly. The webhook
// path swallows every condition this service cannot resolve (wrong type,
// unparseable id, unknown order, already settled) so the provider stops
// retrying; only storage/publish failures surface as errors.

type IConfirmPaymentUseCase interface {
	ConfirmByID(ctx context.Context, id uuid.UUID) error
	ProcessMercadoPagoWebhook(ctx context.Context, notification WebhookNotification) error
}

type ConfirmPaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	publisher interfaces.IPaymentEventPublisher
}

var _ IConfirmPaymentUseCase = (*ConfirmPaymentUseCase)(nil)

func NewConfirmPaymentUseCase(repo interfaces.IPaymentRepository, publisher interfaces.IPaymentEventPublisher) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{repo: repo, publisher: publisher}
}

func (u *ConfirmPaymentUseCase) ConfirmByID(ctx context.Context, id uuid.UUID) error {
	log.Printf("[payment][usecase] confirm start payment_id=%s", id)

	payment, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] confirm load failed payment_id=%s err=%v", id, err)
		return err
	}
	if payment == nil {
		log.Printf("[payment][usecase] payment not found payment_id=%s", id)
		return ErrPaymentNotFound
	}

	if err := payment.Confirm(); err != nil {
		log.Printf("[payment][usecase] confirm rejected payment_id=%s err=%v", id, err)
		return err
	}

	if err := u.repo.Update(ctx, payment); err != nil {
		log.Printf("[payment][usecase] confirm update failed payment_id=%s err=%v", id, err)
		return err
	}

	return u.publishConfirmed(ctx, payment.ID, payment.OrderID)
}

func (u *ConfirmPaymentUseCase) ProcessMercadoPagoWebhook(ctx context.Context, notification WebhookNotification) error {
	log.Printf("[payment][usecase] webhook start action=%s type=%s data_id=%s user_id=%d",
		notification.Action, notification.Type, notification.DataID, notification.UserID)

	if !strings.EqualFold(notification.Type, "payment") {
		log.Printf("[payment][usecase] ignoring webhook type=%s", notification.Type)
		return nil
	}

	orderID, err := uuid.Parse(notification.DataID)
	if err != nil {
		log.Printf("[payment][usecase] ignoring webhook with invalid data_id=%s", notification.DataID)
		return nil
	}

	payment, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] webhook load failed order_id=%s err=%v", orderID, err)
		return err
	}
	if payment == nil {
		log.Printf("[payment][usecase] no payment for order_id=%s", orderID)
		return nil
	}

	// Idempotency guard: repeated deliveries after the first confirmation
	// are silent no-ops and never re-publish the integration event. Two
	// truly concurrent deliveries can still both pass this read; see the
	// store layer for the conditional-write hardening option.
	if payment.IsConfirmed() {
		log.Printf("[payment][usecase] payment already confirmed payment_id=%s", payment.ID)
		return nil
	}

	if err := payment.Confirm(); err != nil {
		log.Printf("[payment][usecase] webhook confirm rejected payment_id=%s err=%v", payment.ID, err)
		return nil
	}

	if err := u.repo.Update(ctx, payment); err != nil {
		log.Printf("[payment][usecase] webhook update failed payment_id=%s err=%v", payment.ID, err)
		return err
	}
	log.Printf("[payment][usecase] payment confirmed payment_id=%s order_id=%s", payment.ID, orderID)

	return u.publishConfirmed(ctx, payment.ID, payment.OrderID)
}

// publishConfirmed emits the integration event once persistence succeeded.
func (u *ConfirmPaymentUseCase) publishConfirmed(ctx context.Context, paymentID, orderID uuid.UUID) error {
	event := interfaces.PaymentConfirmedEvent{PaymentID: paymentID, OrderID: orderID}
	if err := u.publisher.PublishPaymentConfirmed(ctx, event); err != nil {
		log.Printf("[payment][usecase] publish failed payment_id=%s err=%v", paymentID, err)
		return err
	}
	log.Printf("[payment][usecase] confirmed event published payment_id=%s order_id=%s", paymentID, orderID)
	return nil
}
