package request

// MercadoPagoWebhookRequest is the notification envelope MercadoPago posts
// to /v1/webhooks/mercadopago. data.id carries the external reference we
// sent at creation time, i.e. the order id.

type MercadoPagoWebhookRequest struct {
	Action      string                 `json:"action"`
	Type        string                 `json:"type"`
	Data        MercadoPagoWebhookData `json:"data"`
	DateCreated string                 `json:"date_created"`
	UserID      int64                  `json:"user_id"`
}

type MercadoPagoWebhookData struct {
	ID string `json:"id"`
}
