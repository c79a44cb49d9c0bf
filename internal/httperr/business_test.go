package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsBusiness(t *testing.T) {
	err := ErrConflict("slot_taken", "Horário indisponível para esta barbearia.")

	be, ok := AsBusiness(err)
	if !ok {
		t.Fatal("expected business error")
	}
	if be.Kind != KindConflict {
		t.Errorf("kind = %v, want KindConflict", be.Kind)
	}
	if be.Code != "slot_taken" {
		t.Errorf("code = %q", be.Code)
	}
	if be.Message != "Horário indisponível para esta barbearia." {
		t.Errorf("message = %q", be.Message)
	}
}

func TestAsBusinessWrapped(t *testing.T) {
	err := fmt.Errorf("creating appointment: %w", ErrNotFound("client_not_found", "Cliente não encontrado"))

	be, ok := AsBusiness(err)
	if !ok {
		t.Fatal("expected business error through wrapping")
	}
	if be.Kind != KindNotFound || be.Code != "client_not_found" {
		t.Errorf("unexpected error: %+v", be)
	}
}

func TestAsBusinessPlainError(t *testing.T) {
	if _, ok := AsBusiness(errors.New("connection refused")); ok {
		t.Error("plain error classified as business error")
	}
}

func TestIsBusiness(t *testing.T) {
	err := ErrInvalid("invalid_date_or_time", "Data ou hora inválida.")

	if !IsBusiness(err, "invalid_date_or_time") {
		t.Error("expected match on code")
	}
	if IsBusiness(err, "slot_taken") {
		t.Error("matched wrong code")
	}
	if IsBusiness(nil, "slot_taken") {
		t.Error("matched nil error")
	}
}
