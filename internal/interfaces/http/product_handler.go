package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/application/dto"
	"github.com/credimovil/backoffice-api/internal/application/usecase"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/pkg/validator"
)

// ProductHandler expone el catálogo de productos.
type ProductHandler struct {
	products *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(p *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{products: p}
}

// Create godoc
// @Summary Crear un producto
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Producto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Código ya existente"
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	product, err := h.products.Create(c.Context(), &entity.Product{
		Code:          req.Code,
		Article:       req.Article,
		Price:         req.Price,
		BusinessPrice: req.BusinessPrice,
		CategoryID:    req.CategoryID,
	}, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductResponse(product))
}

// Get godoc
// @Summary Obtener un producto
// @Tags products
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponse(product))
}

// List godoc
// @Summary Listar productos
// @Tags products
// @Produce json
// @Param limit query int false "Límite de página"
// @Param offset query int false "Offset de página"
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	list, err := h.products.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewProductResponse(p))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary Actualizar un producto
// @Description El código de catálogo no se modifica.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID del producto"
// @Param request body dto.UpdateProductRequest true "Producto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	product, err := h.products.Update(c.Context(), &entity.Product{
		ID:            c.Params("id"),
		Article:       req.Article,
		Price:         req.Price,
		BusinessPrice: req.BusinessPrice,
		CategoryID:    req.CategoryID,
	}, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Delete godoc
// @Summary Eliminar un producto
// @Tags products
// @Param id path string true "ID del producto"
// @Success 204 "Eliminado"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
