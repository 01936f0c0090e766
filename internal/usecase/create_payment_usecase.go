package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"techfood_payment/internal/domain/entities"
	"techfood_payment/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrInvalidPaymentType       = errors.New("invalid payment type")
	ErrCreditCardNotImplemented = errors.New("credit card payment is not implemented yet")
)

const (
	// PosID identifies the kiosk channel originating QR payments.
	PosID = "TOTEM01"

	brandName = "TechFood"
)

// PaymentOutput is the use-case result returned to the HTTP layer.
type PaymentOutput struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	CreatedAt  time.Time
	PaidAt     *time.Time
	Type       entities.PaymentType
	Status     entities.PaymentStatus
	Amount     float64
	QrCodeData string
}

// ICreatePaymentUseCase encapsulates "create a payment for an order".
//
// Ordering guarantee: the provider is invoked before anything is persisted,
// so a provider failure leaves no payment row behind.

type ICreatePaymentUseCase interface {
	Create(ctx context.Context, orderID uuid.UUID, paymentType entities.PaymentType) (PaymentOutput, error)
}

type CreatePaymentUseCase struct {
	repo           interfaces.IPaymentRepository
	orderService   interfaces.IOrderService
	productService interfaces.IProductService

	// gateways maps each payment type onto its provider adapter. The map is
	// resolved once at wiring time; types without an entry are rejected.
	gateways map[entities.PaymentType]interfaces.IPaymentGateway
}

var _ ICreatePaymentUseCase = (*CreatePaymentUseCase)(nil)

func NewCreatePaymentUseCase(
	repo interfaces.IPaymentRepository,
	orderService interfaces.IOrderService,
	productService interfaces.IProductService,
	gateways map[entities.PaymentType]interfaces.IPaymentGateway,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		repo:           repo,
		orderService:   orderService,
		productService: productService,
		gateways:       gateways,
	}
}

func (u *CreatePaymentUseCase) Create(ctx context.Context, orderID uuid.UUID, paymentType entities.PaymentType) (PaymentOutput, error) {
	log.Printf("[payment][usecase] create start order_id=%s type=%s", orderID, paymentType)

	order, err := u.orderService.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] order lookup failed order_id=%s err=%v", orderID, err)
		return PaymentOutput{}, err
	}
	if order == nil {
		log.Printf("[payment][usecase] order not found order_id=%s", orderID)
		return PaymentOutput{}, ErrOrderNotFound
	}

	// The amount always comes from the order record, never from the caller.
	payment, err := entities.NewPayment(orderID, paymentType, order.Amount)
	if err != nil {
		log.Printf("[payment][usecase] payment rejected order_id=%s err=%v", orderID, err)
		return PaymentOutput{}, err
	}

	products, err := u.productService.GetAll(ctx)
	if err != nil {
		log.Printf("[payment][usecase] product lookup failed order_id=%s err=%v", orderID, err)
		return PaymentOutput{}, err
	}

	qrCodeData := ""
	switch paymentType {
	case entities.PaymentTypeCreditCard:
		log.Printf("[payment][usecase] credit card requested order_id=%s", orderID)
		return PaymentOutput{}, ErrCreditCardNotImplemented
	default:
		gateway, ok := u.gateways[paymentType]
		if !ok {
			log.Printf("[payment][usecase] unknown payment type order_id=%s type=%s", orderID, paymentType)
			return PaymentOutput{}, ErrInvalidPaymentType
		}

		result, err := gateway.GenerateQrCodePayment(ctx, buildQrCodeRequest(order, products))
		if err != nil {
			log.Printf("[payment][usecase] gateway failed order_id=%s err=%v", orderID, err)
			return PaymentOutput{}, err
		}
		qrCodeData = result.QrCodeData
	}

	if _, err := u.repo.Add(ctx, payment); err != nil {
		log.Printf("[payment][usecase] payment repository add failed order_id=%s payment_id=%s err=%v", orderID, payment.ID, err)
		return PaymentOutput{}, err
	}
	log.Printf("[payment][usecase] create success order_id=%s payment_id=%s status=%s", orderID, payment.ID, payment.Status)

	return PaymentOutput{
		ID:         payment.ID,
		OrderID:    payment.OrderID,
		CreatedAt:  payment.CreatedAt,
		PaidAt:     payment.PaidAt,
		Type:       payment.Type,
		Status:     payment.Status,
		Amount:     payment.Amount,
		QrCodeData: qrCodeData,
	}, nil
}

func buildQrCodeRequest(order *interfaces.OrderResult, products []interfaces.ProductResult) interfaces.QrCodePaymentRequest {
	names := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	items := make([]interfaces.QrCodePaymentItem, 0, len(order.Items))
	for _, i := range order.Items {
		// An unmatched product id degrades to an empty title, never an error.
		items = append(items, interfaces.QrCodePaymentItem{
			Title:     names[i.ID],
			Quantity:  i.Quantity,
			Unit:      "unit",
			UnitPrice: i.Price,
			Amount:    i.Price * float64(i.Quantity),
		})
	}

	return interfaces.QrCodePaymentRequest{
		PosID:   PosID,
		OrderID: order.ID,
		Title:   fmt.Sprintf("%s - Order #%d", brandName, order.Number),
		Amount:  order.Amount,
		Items:   items,
	}
}
