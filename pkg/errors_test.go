package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	httpErr := e.ToHTTPError()
	if httpErr.Code != "INTERNAL_ERROR" || httpErr.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", httpErr)
	}

	simple := NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Err != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "PAYMENT_NOT_FOUND: Payment not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}
}
