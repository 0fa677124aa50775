package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/api/middleware"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

type stubAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func newAuthContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_LoginSetsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		token: "signed-token",
		user:  &domain.User{Username: "elena", Role: domain.RoleAdmin},
	}, false)

	c, rec := newAuthContext(`{"username":"elena","password":"staging-room"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatal("login must set the session cookie")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("cookie carries wrong value: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("session cookie must be SameSite=Strict, got %v", cookie.SameSite)
	}
	if cookie.MaxAge <= 0 {
		t.Fatalf("session cookie must carry a positive MaxAge, got %d", cookie.MaxAge)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_LoginFailureIssuesNoCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, false)

	c, rec := newAuthContext(`{"username":"elena","password":"guess"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessionCookie(rec) != nil {
		t.Fatal("failed login must not touch the cookie")
	}
}

func TestAuthHandler_LoginValidatesPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	c, _ := newAuthContext(`{"username":"elena"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatal("logout must rewrite the session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("logout must expire the cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_SessionAnonymous(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/session", nil), rec)
	if err := h.Session(c); err != nil {
		t.Fatalf("Session: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_SessionAuthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/session", nil), rec)
	c.Set(middleware.ContextRole, domain.RoleAgent)
	c.Set(middleware.ContextUsername, "marco")
	if err := h.Session(c); err != nil {
		t.Fatalf("Session: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"authenticated":true`) || !strings.Contains(body, `"role":"agent"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}
