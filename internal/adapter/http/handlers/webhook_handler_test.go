package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techfood_payment/internal/adapter/http/handlers/mocks"
	"techfood_payment/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPago)
	return r
}

func signManifest(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookHandler_SignatureVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid signature returns opaque 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(confirmUC, "s"))

		// The confirm path must never run: no EXPECT on the mock.
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?data.id=ABC", bytes.NewBufferString(`{"type":"payment","data":{"id":"ABC"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-request-id", "REQ")
		req.Header.Set("x-signature", "ts=1700000000,v1=deadbeef")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("valid signature dispatches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(confirmUC, "s"))

		orderID := uuid.New()
		v1 := signManifest("s", orderID.String(), "REQ", "1700000000")

		confirmUC.EXPECT().ProcessMercadoPagoWebhook(gomock.Any(), usecase.WebhookNotification{
			Action:      "payment.updated",
			Type:        "payment",
			DataID:      orderID.String(),
			DateCreated: "2026-08-28T10:00:00Z",
			UserID:      1234,
		}).Return(nil)

		body := fmt.Sprintf(`{"action":"payment.updated","type":"payment","data":{"id":"%s"},"date_created":"2026-08-28T10:00:00Z","user_id":1234}`, orderID)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?data.id="+orderID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-request-id", "REQ")
		req.Header.Set("x-signature", "ts=1700000000,v1="+v1)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("hex comparison is case-insensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		h := NewWebhookHandler(confirmUC, "s")

		v1 := strings.ToUpper(signManifest("s", "ABC", "REQ", "1700000000"))
		if !h.verifySignature("ts=1700000000, v1="+v1, "REQ", "ABC") {
			t.Fatalf("uppercase v1 must verify")
		}
	})

	t.Run("no secret skips verification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(confirmUC, ""))

		confirmUC.EXPECT().ProcessMercadoPagoWebhook(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"ABC"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-signature", "ts=1,v1=bogus")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no signature header skips verification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(confirmUC, "s"))

		confirmUC.EXPECT().ProcessMercadoPagoWebhook(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"ABC"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_Dispatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed body is a client error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(confirmUC, ""))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("irrelevant notification type still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(confirmUC, ""))

		confirmUC.EXPECT().ProcessMercadoPagoWebhook(gomock.Any(), usecase.WebhookNotification{
			Type:   "merchant_account",
			DataID: "123",
		}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"merchant_account","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("processing failure is a server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		confirmUC := mocks.NewMockIConfirmPaymentUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(confirmUC, ""))

		confirmUC.EXPECT().ProcessMercadoPagoWebhook(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
