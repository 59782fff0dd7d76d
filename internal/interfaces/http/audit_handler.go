package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/application/audit"
	"github.com/credimovil/backoffice-api/internal/application/dto"
	"github.com/credimovil/backoffice-api/internal/domain"
)

// AuditHandler expone la lectura del registro de auditoría (solo admin).
type AuditHandler struct {
	sink *audit.Sink
}

// NewAuditHandler construye el handler.
func NewAuditHandler(s *audit.Sink) *AuditHandler {
	return &AuditHandler{sink: s}
}

// List godoc
// @Summary Listar entradas de auditoría
// @Tags audit
// @Produce json
// @Param limit query int false "Límite de página"
// @Param offset query int false "Offset de página"
// @Success 200 {array} dto.AuditLogResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	list, err := h.sink.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.AuditLogResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.NewAuditLogResponse(a))
	}
	return c.JSON(out)
}
