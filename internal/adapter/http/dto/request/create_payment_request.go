package request

// CreatePaymentRequest is the payload for POST /v1/payments. There is no
// amount field; the amount is read from the Order service.

type CreatePaymentRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Type    string `json:"type" binding:"required"`
}
