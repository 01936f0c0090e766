package products

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"techfood_payment/internal/usecase/interfaces"
)

// ProductService fetches the product catalog from the product microservice.
type ProductService struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IProductService = (*ProductService)(nil)

func NewProductService(baseURL string) *ProductService {
	return &ProductService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *ProductService) GetAll(ctx context.Context) ([]interfaces.ProductResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][products] catalog fetch failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product service returned status %d", resp.StatusCode)
	}

	var products []interfaces.ProductResult
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}
