package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return out
}

// E-mail já usado por um barbeiro bloqueia o registro de cliente: o
// namespace de e-mails é único entre os dois tipos de usuário.
func TestRegisterClientEmailTaken(t *testing.T) {
	var asked string
	h := &ClientHandler{
		emailDomainValid: func(string) bool { return true },
		emailInUse: func(email string) (bool, error) {
			asked = email
			return true, nil
		},
	}

	c, w := postJSON(t, `{"name":"João Silva","email":"Joao@Example.COM","password":"segredo1"}`)
	h.Register(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	body := decodeError(t, w)
	if body["error_code"] != "email_in_use" {
		t.Errorf("error_code = %q", body["error_code"])
	}
	if body["message"] != "Email já cadastrado" {
		t.Errorf("message = %q", body["message"])
	}
	if asked != "joao@example.com" {
		t.Errorf("checked email = %q, want normalized form", asked)
	}
}

func TestRegisterClientInvalidEmailDomain(t *testing.T) {
	h := &ClientHandler{
		emailDomainValid: func(string) bool { return false },
	}

	c, w := postJSON(t, `{"name":"João Silva","email":"joao@dominio-inexistente.zz","password":"segredo1"}`)
	h.Register(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeError(t, w); body["error_code"] != "invalid_email_domain" {
		t.Errorf("error_code = %q", body["error_code"])
	}
}

func TestRegisterClientEmailCheckFailure(t *testing.T) {
	h := &ClientHandler{
		emailDomainValid: func(string) bool { return true },
		emailInUse: func(string) (bool, error) {
			return false, errors.New("connection refused")
		},
	}

	c, w := postJSON(t, `{"name":"João Silva","email":"joao@example.com","password":"segredo1"}`)
	h.Register(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decodeError(t, w); body["error_code"] != "failed_to_check_email" {
		t.Errorf("error_code = %q", body["error_code"])
	}
}
