package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "techfood_payment/internal/adapter/http/dto/request"
	response "techfood_payment/internal/adapter/http/dto/response"
	"techfood_payment/internal/domain/entities"
	"techfood_payment/internal/usecase"
	"techfood_payment/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for payments.

type PaymentHandler struct {
	createUseCase  usecase.ICreatePaymentUseCase
	confirmUseCase usecase.IConfirmPaymentUseCase
}

func NewPaymentHandler(createUseCase usecase.ICreatePaymentUseCase, confirmUseCase usecase.IConfirmPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{createUseCase: createUseCase, confirmUseCase: confirmUseCase}
}

// CreatePayment creates a pending payment for an order.
//
//	@Summary  Create a payment for an order
//	@Tags     payments
//	@Accept   json
//	@Produce  json
//	@Param    payment body request.CreatePaymentRequest true "order id and payment type"
//	@Success  200 {object} response.PaymentResponse
//	@Router   /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	orderID, err := uuid.Parse(strings.TrimSpace(payload.OrderID))
	if err != nil {
		log.Printf("[payment][handler] invalid order_id=%q err=%v", payload.OrderID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	paymentType := entities.PaymentType(strings.ToLower(strings.TrimSpace(payload.Type)))

	log.Printf("[payment][handler] create start order_id=%s type=%s", orderID, paymentType)
	out, err := h.createUseCase.Create(c.Request.Context(), orderID, paymentType)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s payment_id=%s status=%s", orderID, out.ID, out.Status)

	c.JSON(http.StatusOK, response.FromPaymentOutput(out))
}

// ConfirmPayment approves a payment by id.
//
//	@Summary  Confirm a payment
//	@Tags     payments
//	@Produce  json
//	@Param    id path string true "payment id"
//	@Success  200
//	@Router   /payments/{id} [patch]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Printf("[payment][handler] invalid payment id=%q err=%v", c.Param("id"), err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] confirm start payment_id=%s", id)
	if err := h.confirmUseCase.ConfirmByID(c.Request.Context(), id); err != nil {
		log.Printf("[payment][handler] confirm failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success payment_id=%s", id)

	c.Status(http.StatusOK)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidPaymentAmount),
		errors.Is(err, entities.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrPaymentAlreadyPaid):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_PAID", "Payment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrCreditCardNotImplemented):
		return pkg.NewDomainErrorSimple("PAYMENT_TYPE_NOT_IMPLEMENTED", "Credit card payment is not implemented yet", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
