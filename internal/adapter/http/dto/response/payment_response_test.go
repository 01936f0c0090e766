package response

import (
	"encoding/json"
	"testing"
	"time"

	"techfood_payment/internal/domain/entities"
	"techfood_payment/internal/usecase"

	"github.com/google/uuid"
)

func TestFromPaymentOutput(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()
	orderID := uuid.New()

	out := usecase.PaymentOutput{
		ID:         id,
		OrderID:    orderID,
		CreatedAt:  now,
		Type:       entities.PaymentTypeMercadoPago,
		Status:     entities.PaymentStatusPending,
		Amount:     150.75,
		QrCodeData: "qr-data",
	}

	res := FromPaymentOutput(out)
	if res.ID != id.String() || res.OrderID != orderID.String() {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Type != "mercado_pago" || res.Status != "pending" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || res.PaidAt != nil {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.Amount != 150.75 || res.QrCodeData != "qr-data" {
		t.Fatalf("unexpected fields: %+v", res)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["paid_at"]; ok {
		t.Fatalf("paid_at must be omitted while unpaid: %s", b)
	}
	if body["qr_code_data"] != "qr-data" {
		t.Fatalf("unexpected payload: %s", b)
	}
}
