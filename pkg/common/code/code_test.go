package code

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithMsgKeepsIdentity(t *testing.T) {
	err := NotAvailable.WithMsg("Scope is busy at 09:00")
	if !errors.Is(err, NotAvailable) {
		t.Fatal("WithMsg copy should match the sentinel via errors.Is")
	}
	if err.Error() != "Scope is busy at 09:00" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if NotAvailable.ErrMsg != "not available at the requested time" {
		t.Fatal("sentinel must not be mutated")
	}
}

func TestWithErrUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := RPCHttpErr.WithErr(cause)

	if !errors.Is(err, RPCHttpErr) {
		t.Fatal("WithErr copy should match the sentinel")
	}
	if !errors.Is(err, cause) {
		t.Fatal("WithErr should unwrap to the cause")
	}
}

func TestWrappedThroughFmt(t *testing.T) {
	err := fmt.Errorf("loading dashboard: %w", Unauthorized)
	if !errors.Is(err, Unauthorized) {
		t.Fatal("sentinel should survive fmt wrapping")
	}
	if errors.Is(err, UnLogin) {
		t.Fatal("distinct codes must not match each other")
	}
}
