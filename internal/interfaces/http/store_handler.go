package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/application/dto"
	"github.com/credimovil/backoffice-api/internal/application/usecase"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/pkg/validator"
)

// StoreHandler expone tiendas/bodegas.
type StoreHandler struct {
	stores *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(s *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{stores: s}
}

// Create godoc
// @Summary Crear una tienda
// @Tags stores
// @Accept json
// @Produce json
// @Param request body dto.StoreRequest true "Tienda"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	store, err := h.stores.Create(c.Context(), &entity.Store{Name: req.Name, Address: req.Address}, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewStoreResponse(store))
}

// Get godoc
// @Summary Obtener una tienda
// @Tags stores
// @Produce json
// @Param id path string true "ID de la tienda"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /stores/{id} [get]
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	store, err := h.stores.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewStoreResponse(store))
}

// List godoc
// @Summary Listar tiendas
// @Tags stores
// @Produce json
// @Param limit query int false "Límite de página"
// @Param offset query int false "Offset de página"
// @Success 200 {array} dto.StoreResponse
// @Security BearerAuth
// @Router /stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	list, err := h.stores.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewStoreResponse(s))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary Actualizar una tienda
// @Tags stores
// @Accept json
// @Produce json
// @Param id path string true "ID de la tienda"
// @Param request body dto.StoreRequest true "Tienda"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /stores/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	store, err := h.stores.Update(c.Context(), &entity.Store{
		ID:      c.Params("id"),
		Name:    req.Name,
		Address: req.Address,
	}, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewStoreResponse(store))
}

// Delete godoc
// @Summary Eliminar una tienda
// @Tags stores
// @Param id path string true "ID de la tienda"
// @Success 204 "Eliminada"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /stores/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.stores.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
