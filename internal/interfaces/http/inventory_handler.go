package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/application/dto"
	"github.com/credimovil/backoffice-api/internal/application/ledger"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
	"github.com/credimovil/backoffice-api/pkg/validator"
)

// InventoryHandler expone el ledger de inventario por HTTP.
type InventoryHandler struct {
	ledger *ledger.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(l *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{ledger: l}
}

// List godoc
// @Summary Listar balances de stock
// @Tags inventory
// @Produce json
// @Param store_id query string false "Filtrar por tienda"
// @Param product_id query string false "Filtrar por producto"
// @Param imei query string false "Filtrar por IMEI"
// @Param limit query int false "Límite de página"
// @Param offset query int false "Offset de página"
// @Success 200 {array} dto.BalanceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	filter := repository.BalanceFilter{
		StoreID:   c.Query("store_id"),
		ProductID: c.Query("product_id"),
		IMEI:      c.Query("imei"),
	}
	list, err := h.ledger.ListBalances(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.BalanceResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.NewBalanceResponse(b))
	}
	return c.JSON(out)
}

// RecordMovement godoc
// @Summary Registrar un movimiento de inventario
// @Description Aplica una entrada, salida o ajuste sobre un balance y agrega el movimiento al historial.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.RecordMovementRequest true "Movimiento"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Stock insuficiente o reintento duplicado"
// @Security BearerAuth
// @Router /inventory/moved [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var req dto.RecordMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	var key *string
	if req.IdempotencyKey != "" {
		key = &req.IdempotencyKey
	}
	balance, err := h.ledger.RecordMovement(c.Context(), ledger.MovementInput{
		Balance: ledger.BalanceRef{
			BalanceID:   req.BalanceID,
			ProductCode: req.ProductCode,
			StoreID:     req.StoreID,
		},
		Quantity:       req.Quantity,
		Type:           req.MovementType,
		Reason:         req.Reason,
		PerformedBy:    GetUserID(c),
		IdempotencyKey: key,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewBalanceResponse(balance))
}

// TransferStock godoc
// @Summary Transferir stock entre tiendas
// @Description Debita la tienda origen y acredita la destino en una sola transacción.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.TransferStockRequest true "Transferencia"
// @Success 204 "Transferencia aplicada"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Sin balance en la tienda origen"
// @Failure 409 {object} dto.ErrorResponse "Stock insuficiente en origen"
// @Security BearerAuth
// @Router /inventory/store-moved [post]
func (h *InventoryHandler) TransferStock(c *fiber.Ctx) error {
	var req dto.TransferStockRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	var key *string
	if req.IdempotencyKey != "" {
		key = &req.IdempotencyKey
	}
	err := h.ledger.TransferStock(c.Context(), ledger.TransferInput{
		ProductID:          req.ProductID,
		OriginStoreID:      req.OriginStoreID,
		DestinationStoreID: req.DestinationStoreID,
		Quantity:           req.Quantity,
		PerformedBy:        GetUserID(c),
		IdempotencyKey:     key,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetBalance godoc
// @Summary Fijar el balance de un producto (override administrativo)
// @Description Fija stock y conteo físico al valor dado sin generar movimiento.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "ID del balance"
// @Param request body dto.SetBalanceRequest true "Nuevo balance"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *InventoryHandler) SetBalance(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.SetBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	balance, err := h.ledger.SetBalance(c.Context(), ledger.BalanceRef{BalanceID: id}, req.Quantity, req.IMEI, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewBalanceResponse(balance))
}

// Delete godoc
// @Summary Eliminar un balance
// @Tags inventory
// @Param id path string true "ID del balance"
// @Success 204 "Eliminado"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.DeleteBalance(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovements godoc
// @Summary Historial de movimientos de un balance
// @Tags inventory
// @Produce json
// @Param id path string true "ID del balance"
// @Param limit query int false "Límite de página"
// @Param offset query int false "Offset de página"
// @Success 200 {array} dto.MovementResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	list, err := h.ledger.ListMovements(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.NewMovementResponse(m))
	}
	return c.JSON(out)
}
