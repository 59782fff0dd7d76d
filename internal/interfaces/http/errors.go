package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/application/dto"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/pkg/validator"
)

// writeError mapea un error de dominio al status y cuerpo HTTP. Todo error
// sale con código legible por máquina y mensaje humano.
func writeError(c *fiber.Ctx, err error) error {
	var fieldErr validator.FieldError
	if errors.As(err, &fieldErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: fieldErr.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado o reintento ya aplicado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	case errors.Is(err, domain.ErrTimeout):
		// Resultado desconocido: el caller solo debe reintentar con idempotency_key.
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "tiempo de espera agotado, resultado desconocido"})
	case errors.Is(err, domain.ErrPartialTransfer):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PARTIAL_TRANSFER", Message: "transferencia aplicada parcialmente, requiere conciliación"})
	case errors.Is(err, domain.ErrDependencyFailure):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DEPENDENCY_FAILURE", Message: "dependencia externa no disponible"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
