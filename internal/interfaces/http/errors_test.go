package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/pkg/validator"
)

// TestWriteError_MapeoDeStatus verifica el contrato error de dominio → status
// HTTP que comparten todos los handlers.
func TestWriteError_MapeoDeStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"entrada inválida", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{"error de campo", validator.FieldError{Field: "Quantity", Tag: "gt"}, http.StatusBadRequest, "VALIDATION"},
		{"no autorizado", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"prohibido", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"stock insuficiente", domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"email existente", domain.ErrEmailAlreadyExists, http.StatusConflict, "EMAIL_EXISTS"},
		{"timeout", domain.ErrTimeout, http.StatusGatewayTimeout, "TIMEOUT"},
		{"desconocido", errors.New("se cayó todo"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return writeError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.wantCode)
		})
	}
}
