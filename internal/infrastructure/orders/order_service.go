package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"techfood_payment/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// OrderService fetches order snapshots from the order microservice.
type OrderService struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IOrderService = (*OrderService)(nil)

func NewOrderService(baseURL string) *OrderService {
	return &OrderService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*interfaces.OrderResult, error) {
	url := fmt.Sprintf("%s/v1/orders/%s", s.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][orders] lookup failed order_id=%s err=%v", id, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	var order interfaces.OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
