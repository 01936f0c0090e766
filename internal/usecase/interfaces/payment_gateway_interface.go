package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// QrCodePaymentItem is one order line forwarded to the provider.
type QrCodePaymentItem struct {
	Title     string
	Quantity  int
	Unit      string
	UnitPrice float64
	Amount    float64
}

// QrCodePaymentRequest describes the QR order sent to the provider. The
// order id travels as the provider's external reference and comes back on
// webhook notifications.
type QrCodePaymentRequest struct {
	PosID   string
	OrderID uuid.UUID
	Title   string
	Amount  float64
	Items   []QrCodePaymentItem
}

type QrCodePaymentResult struct {
	QrCodeID   string
	QrCodeData string
}

// IPaymentGateway abstracts "generate a QR-code payment" for one external
// payment provider (e.g. Mercado Pago).
//
// A single attempt per invocation; retrying is the caller's decision.
type IPaymentGateway interface {
	GenerateQrCodePayment(ctx context.Context, req QrCodePaymentRequest) (QrCodePaymentResult, error)
}
