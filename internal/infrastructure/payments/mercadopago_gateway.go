package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"techfood_payment/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
)

const defaultMercadoPagoBaseURL = "https://api.mercadopago.com"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway creates dynamic QR code orders through the
// Mercado Pago in-person orders API (POST /v1/orders).
type MercadoPagoGateway struct {
	cfg        *config.Config
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}

	baseURL := os.Getenv("MERCADOPAGO_BASE_URL")
	if baseURL == "" {
		baseURL = defaultMercadoPagoBaseURL
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized base_url=%s", baseURL)

	return &MercadoPagoGateway{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type qrOrderRequest struct {
	Type              string        `json:"type"`
	ExternalReference string        `json:"external_reference"`
	Description       string        `json:"description"`
	TotalAmount       string        `json:"total_amount"`
	Config            qrOrderConfig `json:"config"`
	Transactions      qrOrderTxns   `json:"transactions"`
	Items             []qrOrderItem `json:"items"`
}

type qrOrderConfig struct {
	Qr qrConfig `json:"qr"`
}

type qrConfig struct {
	ExternalPosID string `json:"external_pos_id"`
	Mode          string `json:"mode"`
}

type qrOrderTxns struct {
	Payments []qrOrderPayment `json:"payments"`
}

type qrOrderPayment struct {
	Amount string `json:"amount"`
}

type qrOrderItem struct {
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
	UnitMeasure string `json:"unit_measure"`
	UnitPrice   string `json:"unit_price"`
}

type qrOrderResponse struct {
	ID           string `json:"id"`
	TypeResponse struct {
		QrData string `json:"qr_data"`
	} `json:"type_response"`
}

type qrOrderErrorResponse struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (g *MercadoPagoGateway) GenerateQrCodePayment(ctx context.Context, req interfaces.QrCodePaymentRequest) (interfaces.QrCodePaymentResult, error) {
	log.Printf("[payment][gateway] qr order start order_id=%s amount=%.2f", req.OrderID, req.Amount)

	body, err := json.Marshal(buildQrOrderRequest(req))
	if err != nil {
		return interfaces.QrCodePaymentResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return interfaces.QrCodePaymentResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.AccessToken)
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] qr order request failed err=%v", err)
		return interfaces.QrCodePaymentResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.QrCodePaymentResult{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return interfaces.QrCodePaymentResult{}, decodeQrOrderError(resp.StatusCode, raw)
	}

	var out qrOrderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[payment][gateway] qr order response decode failed err=%v", err)
		return interfaces.QrCodePaymentResult{}, err
	}
	log.Printf("[payment][gateway] qr order success order_id=%s qr_code_id=%s", req.OrderID, out.ID)

	return interfaces.QrCodePaymentResult{
		QrCodeID:   out.ID,
		QrCodeData: out.TypeResponse.QrData,
	}, nil
}

func buildQrOrderRequest(req interfaces.QrCodePaymentRequest) qrOrderRequest {
	items := make([]qrOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, qrOrderItem{
			Title:       it.Title,
			Quantity:    it.Quantity,
			UnitMeasure: it.Unit,
			UnitPrice:   formatAmount(it.UnitPrice),
		})
	}

	return qrOrderRequest{
		Type:              "qr",
		ExternalReference: req.OrderID.String(),
		Description:       req.Title,
		TotalAmount:       formatAmount(req.Amount),
		Config: qrOrderConfig{
			Qr: qrConfig{
				ExternalPosID: req.PosID,
				Mode:          "dynamic",
			},
		},
		Transactions: qrOrderTxns{
			Payments: []qrOrderPayment{{Amount: formatAmount(req.Amount)}},
		},
		Items: items,
	}
}

func decodeQrOrderError(status int, raw []byte) error {
	var envelope qrOrderErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		log.Printf("[payment][gateway] qr order rejected status=%d code=%s message=%s", status, first.Code, first.Message)
		return fmt.Errorf("mercado pago order failed: %s (%s)", first.Message, first.Code)
	}
	log.Printf("[payment][gateway] qr order rejected status=%d body=%s", status, raw)
	return fmt.Errorf("mercado pago order failed with status %d", status)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
