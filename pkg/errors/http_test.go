package errors

import (
	"net/http"
	"testing"
)

func TestHTTPError(t *testing.T) {
	err := NewHTTPError(http.StatusTooManyRequests, "slow down")
	if err.Error() != "slow down" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.StatusCode() != http.StatusTooManyRequests {
		t.Errorf("unexpected status %d", err.StatusCode())
	}
	if (&HTTPError{Message: "x"}).StatusCode() != http.StatusBadRequest {
		t.Error("zero code should default to 400")
	}
}
