package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
	"github.com/nine-chairs/myflix-api/internal/core/ports"
)

type stubAuthService struct {
	verifyFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Verify(ctx context.Context, token string) (*domain.User, error) {
	return s.verifyFn(ctx, token)
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		verifyFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{Username: "alice"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(stub, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get(PrincipalKey).(*domain.User)
		if !ok || user.Username != "alice" {
			t.Fatalf("principal not set: %v", c.Get(PrincipalKey))
		}
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		verifyFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("verify should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(stub, zerolog.Nop())
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		verifyFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("verify should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(stub, zerolog.Nop())
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_VerifyFailurePropagates(t *testing.T) {
	for _, verifyErr := range []error{
		domain.ErrMalformedToken,
		domain.ErrInvalidSignature,
		domain.ErrTokenExpired,
		domain.ErrPrincipalNotFound,
	} {
		e := echo.New()
		stub := &stubAuthService{
			verifyFn: func(context.Context, string) (*domain.User, error) {
				return nil, verifyErr
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := Auth(stub, zerolog.Nop())
		err := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next for %v", verifyErr)
			return nil
		})(c)

		if !errors.Is(err, verifyErr) {
			t.Fatalf("expected %v to propagate, got %v", verifyErr, err)
		}
	}
}
