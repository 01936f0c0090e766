package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestOrderService_GetByID(t *testing.T) {
	orderID := uuid.New()

	t.Run("decodes the order snapshot", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			want := "/v1/orders/" + orderID.String()
			if r.URL.Path != want {
				t.Errorf("expected path %s, got %s", want, r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"id":"%s","number":42,"amount":150.75,"items":[{"id":"%s","quantity":3,"price":40.25}]}`, orderID, uuid.New())
		}))
		defer srv.Close()

		order, err := NewOrderService(srv.URL).GetByID(context.Background(), orderID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order == nil {
			t.Fatalf("expected order, got nil")
		}
		if order.ID != orderID || order.Number != 42 || order.Amount != 150.75 {
			t.Fatalf("unexpected order: %+v", order)
		}
		if len(order.Items) != 1 || order.Items[0].Quantity != 3 {
			t.Fatalf("unexpected items: %+v", order.Items)
		}
	})

	t.Run("missing order is nil without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		order, err := NewOrderService(srv.URL).GetByID(context.Background(), orderID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order != nil {
			t.Fatalf("expected nil order, got %+v", order)
		}
	})

	t.Run("unexpected status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		if _, err := NewOrderService(srv.URL).GetByID(context.Background(), orderID); err == nil {
			t.Fatalf("expected error")
		}
	})
}
