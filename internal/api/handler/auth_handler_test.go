package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storelabs/store-api/internal/api/middleware"
	"github.com/storelabs/store-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password, role string) (string, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password, role string) (string, error) {
	return s.loginFn(ctx, username, password, role)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func postCredentials(path, body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.User{ID: "1", Username: username, Password: "$2a$10$hash"}, nil
		},
	}
	h := NewAuthHandler(stub)
	rec, c := postCredentials("/register", `{"username":"Alice","password":"secret"}`)

	if err := middleware.ValidateCredentials(h.Register)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User Registered" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	// The created record, hash included, is part of the response contract.
	if user["password"] != "$2a$10$hash" {
		t.Fatalf("expected password field in payload, got %+v", user)
	}
}

func TestAuthHandler_Register_LongUsernameNeverReachesService(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)
	rec, c := postCredentials("/register", `{"username":"`+strings.Repeat("x", 31)+`","password":"secret"}`)

	if err := middleware.ValidateCredentials(h.Register)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_DuplicatePropagates(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)
	_, c := postCredentials("/register", `{"username":"bob","password":"secret"}`)

	err := middleware.ValidateCredentials(h.Register)(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, role string) (string, error) {
			if role != domain.RoleClient {
				t.Fatalf("expected client role, got %s", role)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub)
	rec, c := postCredentials("/login", `{"username":"alice","password":"secret"}`)

	if err := middleware.ValidateCredentials(h.Login)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != middleware.TokenCookie || cookie.Value != "token123" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if cookie.Path != "/api" || !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}
	if cookie.MaxAge != 0 || !cookie.Expires.IsZero() {
		t.Fatalf("cookie lifetime should be tied to the token, got %+v", cookie)
	}
}

func TestAuthHandler_AdminLogin_RequestsAdminRole(t *testing.T) {
	var gotRole string
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, role string) (string, error) {
			gotRole = role
			return "token456", nil
		},
	}
	h := NewAuthHandler(stub)
	rec, c := postCredentials("/adminlogin", `{"username":"alice","password":"secret"}`)

	if err := middleware.ValidateCredentials(h.AdminLogin)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotRole != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", gotRole)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, role string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)
	rec, c := postCredentials("/login", `{"username":"alice","password":"bad"}`)

	err := middleware.ValidateCredentials(h.Login)(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be set on failed login")
	}
}

func TestAuthHandler_Users_IncludesPasswordHashes(t *testing.T) {
	stub := &stubAuthService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{ID: "1", Username: "alice", Password: "$2a$10$hash"}}, nil
		},
	}
	h := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/see", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 || users[0]["password"] != "$2a$10$hash" {
		t.Fatalf("unexpected payload: %+v", users)
	}
}
