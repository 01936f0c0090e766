package routes

import (
	"techfood_payment/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.PATCH("/:id", paymentHandler.ConfirmPayment)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// MercadoPago posts payment notifications here; the handler answers
		// 200 even for conditions it chooses to ignore.
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPago)
	}
}
