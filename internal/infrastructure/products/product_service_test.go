package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProductService_GetAll(t *testing.T) {
	t.Run("decodes the catalog", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/products" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"0d9a6db5-3f5b-4f5b-9b59-0d17e7f4a0aa","name":"Burger"},{"id":"4e8e4f2f-6d68-4f43-a1b4-1c7a4c5d9e21","name":"Fries"}]`))
		}))
		defer srv.Close()

		products, err := NewProductService(srv.URL).GetAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].Name != "Burger" || products[1].Name != "Fries" {
			t.Fatalf("unexpected products: %+v", products)
		}
	})

	t.Run("unexpected status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		if _, err := NewProductService(srv.URL).GetAll(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
