package response

import (
	"time"

	"techfood_payment/internal/usecase"
)

type PaymentResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	CreatedAt  time.Time  `json:"created_at"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	Type       string     `json:"type"`
	Status     string     `json:"status"`
	Amount     float64    `json:"amount"`
	QrCodeData string     `json:"qr_code_data,omitempty"`
}

func FromPaymentOutput(out usecase.PaymentOutput) PaymentResponse {
	return PaymentResponse{
		ID:         out.ID.String(),
		OrderID:    out.OrderID.String(),
		CreatedAt:  out.CreatedAt,
		PaidAt:     out.PaidAt,
		Type:       string(out.Type),
		Status:     string(out.Status),
		Amount:     out.Amount,
		QrCodeData: out.QrCodeData,
	}
}
