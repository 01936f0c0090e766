package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"

	request "techfood_payment/internal/adapter/http/dto/request"
	"techfood_payment/internal/usecase"
	"techfood_payment/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errWebhookNotFound = pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	errInvalidWebhook  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errWebhookInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// WebhookHandler terminates MercadoPago's asynchronous payment notifications.
//
// Response contract for the provider:
//   - 200: processed or safely ignored (stops provider retries)
//   - 400: body is not a valid notification envelope
//   - 404: signature mismatch, indistinguishable from an unknown resource

type WebhookHandler struct {
	confirmUseCase usecase.IConfirmPaymentUseCase
	secretKey      string
}

func NewWebhookHandler(confirmUseCase usecase.IConfirmPaymentUseCase, secretKey string) *WebhookHandler {
	return &WebhookHandler{confirmUseCase: confirmUseCase, secretKey: secretKey}
}

// HandleMercadoPago verifies the notification signature and dispatches it.
//
//	@Summary  MercadoPago payment notification
//	@Tags     webhooks
//	@Accept   json
//	@Param    data.id query string false "external reference"
//	@Success  200
//	@Router   /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	xSignature := c.GetHeader("x-signature")
	xRequestID := c.GetHeader("x-request-id")
	dataID := c.Query("data.id")

	if h.secretKey != "" && xSignature != "" {
		if !h.verifySignature(xSignature, xRequestID, dataID) {
			log.Printf("[webhook][handler] invalid signature request_id=%s data_id=%s", xRequestID, dataID)
			c.JSON(errWebhookNotFound.HTTPStatus, errWebhookNotFound.ToHTTPError())
			return
		}
	} else {
		log.Printf("[webhook][handler] signature validation skipped - no secret or no signature provided")
	}

	var payload request.MercadoPagoWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] failed to deserialize webhook request err=%v", err)
		c.JSON(errInvalidWebhook.HTTPStatus, errInvalidWebhook.ToHTTPError())
		return
	}

	log.Printf("[webhook][handler] received action=%s type=%s data_id=%s", payload.Action, payload.Type, payload.Data.ID)

	notification := usecase.WebhookNotification{
		Action:      payload.Action,
		Type:        payload.Type,
		DataID:      payload.Data.ID,
		DateCreated: payload.DateCreated,
		UserID:      payload.UserID,
	}
	if err := h.confirmUseCase.ProcessMercadoPagoWebhook(c.Request.Context(), notification); err != nil {
		log.Printf("[webhook][handler] processing failed data_id=%s err=%v", payload.Data.ID, err)
		c.JSON(errWebhookInternal.HTTPStatus, errWebhookInternal.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}

// verifySignature checks x-signature ("ts=...,v1=...") against the
// HMAC-SHA256 of "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func (h *WebhookHandler) verifySignature(xSignature, xRequestID, dataID string) bool {
	var ts, v1 string
	for _, part := range strings.Split(xSignature, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.TrimSpace(kv[0]) {
		case "ts":
			ts = strings.TrimSpace(kv[1])
		case "v1":
			v1 = strings.TrimSpace(kv[1])
		}
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, xRequestID, ts)

	mac := hmac.New(sha256.New, []byte(h.secretKey))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	return strings.EqualFold(expected, v1)
}
