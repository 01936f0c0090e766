package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// ProductResult is the read-only product snapshot used to enrich provider
// line-item titles. A missing product degrades to an empty title upstream.
type ProductResult struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// IProductService fetches the product catalog from the Backoffice service.
type IProductService interface {
	GetAll(ctx context.Context) ([]ProductResult, error)
}
