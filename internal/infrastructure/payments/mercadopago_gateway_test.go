package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techfood_payment/internal/usecase/interfaces"

	"github.com/google/uuid"
)

func newGatewayForTest(t *testing.T, baseURL string) *MercadoPagoGateway {
	t.Helper()
	g, err := NewMercadoPagoGateway("TEST-TOKEN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.baseURL = baseURL
	return g
}

func TestNewMercadoPagoGateway_RequiresAccessToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(""); err != ErrMissingMercadoPagoAccessToken {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_GenerateQrCodePayment(t *testing.T) {
	orderID := uuid.New()
	req := interfaces.QrCodePaymentRequest{
		PosID:   "TOTEM01",
		OrderID: orderID,
		Title:   "TechFood - Order #42",
		Amount:  150.75,
		Items: []interfaces.QrCodePaymentItem{
			{Title: "Burger", Quantity: 3, Unit: "unit", UnitPrice: 40.25, Amount: 120.75},
			{Title: "", Quantity: 1, Unit: "unit", UnitPrice: 30, Amount: 30},
		},
	}

	t.Run("sends the order payload Mercado Pago expects", func(t *testing.T) {
		var captured map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/v1/orders" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer TEST-TOKEN" {
				t.Errorf("unexpected authorization header %q", got)
			}
			if r.Header.Get("X-Idempotency-Key") == "" {
				t.Errorf("missing idempotency key")
			}
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Errorf("decoding body: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ORD-1","type_response":{"qr_data":"00020101mock"}}`))
		}))
		defer srv.Close()

		out, err := newGatewayForTest(t, srv.URL).GenerateQrCodePayment(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.QrCodeID != "ORD-1" || out.QrCodeData != "00020101mock" {
			t.Fatalf("unexpected result: %+v", out)
		}

		if captured["type"] != "qr" {
			t.Errorf("expected type qr, got %v", captured["type"])
		}
		if captured["external_reference"] != orderID.String() {
			t.Errorf("expected external_reference %s, got %v", orderID, captured["external_reference"])
		}
		if captured["description"] != "TechFood - Order #42" {
			t.Errorf("unexpected description %v", captured["description"])
		}
		if captured["total_amount"] != "150.75" {
			t.Errorf("expected total_amount as string, got %v", captured["total_amount"])
		}

		cfg := captured["config"].(map[string]any)["qr"].(map[string]any)
		if cfg["external_pos_id"] != "TOTEM01" || cfg["mode"] != "dynamic" {
			t.Errorf("unexpected qr config %v", cfg)
		}

		txns := captured["transactions"].(map[string]any)["payments"].([]any)
		if len(txns) != 1 || txns[0].(map[string]any)["amount"] != "150.75" {
			t.Errorf("unexpected transactions %v", txns)
		}

		items := captured["items"].([]any)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		first := items[0].(map[string]any)
		if first["title"] != "Burger" || first["quantity"] != float64(3) ||
			first["unit_measure"] != "unit" || first["unit_price"] != "40.25" {
			t.Errorf("unexpected first item %v", first)
		}
	})

	t.Run("surfaces the first coded error on rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":[{"code":"invalid_pos","message":"point of sale not found"}]}`))
		}))
		defer srv.Close()

		_, err := newGatewayForTest(t, srv.URL).GenerateQrCodePayment(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error")
		}
		if !strings.Contains(err.Error(), "point of sale not found") || !strings.Contains(err.Error(), "invalid_pos") {
			t.Fatalf("unexpected error message: %v", err)
		}
	})

	t.Run("falls back to a status error without an envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		}))
		defer srv.Close()

		_, err := newGatewayForTest(t, srv.URL).GenerateQrCodePayment(context.Background(), req)
		if err == nil || !strings.Contains(err.Error(), "502") {
			t.Fatalf("expected status error, got %v", err)
		}
	})
}
