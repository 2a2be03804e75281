package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postJSON(body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestValidateCredentials_NormalizesUsername(t *testing.T) {
	rec, c := postJSON(`{"username":"  AlIcE  ","password":"secret"}`)

	called := false
	handler := ValidateCredentials(func(c echo.Context) error {
		called = true
		creds := BoundCredentials(c)
		if creds.Username != "alice" {
			t.Fatalf("expected trimmed lower-cased username, got %q", creds.Username)
		}
		if creds.Password != "secret" {
			t.Fatalf("password altered: %q", creds.Password)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestValidateCredentials_UsernameTooLong(t *testing.T) {
	rec, c := postJSON(`{"username":"` + strings.Repeat("a", 31) + `","password":"secret"}`)

	handler := ValidateCredentials(func(c echo.Context) error {
		t.Fatalf("should not reach handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp["error"]) != 1 || !strings.Contains(resp["error"][0], "username") {
		t.Fatalf("unexpected messages: %+v", resp["error"])
	}
}

func TestValidateCredentials_MissingFields(t *testing.T) {
	rec, c := postJSON(`{}`)

	handler := ValidateCredentials(func(c echo.Context) error {
		t.Fatalf("should not reach handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp["error"]) != 2 {
		t.Fatalf("expected messages for both fields, got %+v", resp["error"])
	}
}

// A username exactly at the limit passes after trimming.
func TestValidateCredentials_BoundaryLength(t *testing.T) {
	rec, c := postJSON(`{"username":" ` + strings.Repeat("B", 30) + ` ","password":"secret"}`)

	handler := ValidateCredentials(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestValidateCredentials_MalformedBody(t *testing.T) {
	rec, c := postJSON("not-json")

	handler := ValidateCredentials(func(c echo.Context) error {
		t.Fatalf("should not reach handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
