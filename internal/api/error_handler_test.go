package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nine-chairs/myflix-api/internal/api/handler"
	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrMovieNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusBadRequest},
	}

	for _, tc := range cases {
		rec := render(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_TokenFailuresAreIndistinguishable(t *testing.T) {
	tokenErrs := []error{
		domain.ErrMalformedToken,
		domain.ErrInvalidSignature,
		domain.ErrTokenExpired,
		domain.ErrPrincipalNotFound,
	}

	var bodies []string
	for _, err := range tokenErrs {
		rec := render(t, err)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", err, rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}

	// Every token failure must produce the exact same response body.
	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Fatalf("token failure bodies differ: %q vs %q", bodies[0], bodies[i])
		}
	}
}

func TestErrorHandler_ValidationEnvelope(t *testing.T) {
	rec := render(t, &handler.ValidationError{Violations: []handler.FieldViolation{
		{Field: "username", Message: "username must be at least 5 characters"},
		{Field: "email", Message: "email must be a valid email"},
	}})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp struct {
		Errors []handler.FieldViolation `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors) != 2 || resp.Errors[0].Field != "username" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	rec := render(t, errors.New("mongo: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
