package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/application/dto"
	"github.com/credimovil/backoffice-api/internal/application/usecase"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
	"github.com/credimovil/backoffice-api/pkg/validator"
)

// DeviceHandler expone los dispositivos financiados.
type DeviceHandler struct {
	devices *usecase.DeviceUseCase
}

// NewDeviceHandler construye el handler.
func NewDeviceHandler(d *usecase.DeviceUseCase) *DeviceHandler {
	return &DeviceHandler{devices: d}
}

// Create godoc
// @Summary Registrar un dispositivo financiado
// @Tags devices
// @Accept json
// @Produce json
// @Param request body dto.CreateDeviceRequest true "Dispositivo"
// @Success 201 {object} dto.DeviceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "IMEI ya registrado"
// @Security BearerAuth
// @Router /devices [post]
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	device, err := h.devices.Create(c.Context(), &entity.Device{
		IMEI:      req.IMEI,
		Owner:     req.Owner,
		StoreID:   req.StoreID,
		Brand:     req.Brand,
		Model:     req.Model,
		Price:     req.Price,
		PushToken: req.PushToken,
	}, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDeviceResponse(device))
}

// Get godoc
// @Summary Obtener un dispositivo
// @Tags devices
// @Produce json
// @Param id path string true "ID del dispositivo"
// @Success 200 {object} dto.DeviceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /devices/{id} [get]
func (h *DeviceHandler) Get(c *fiber.Ctx) error {
	device, err := h.devices.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewDeviceResponse(device))
}

// List godoc
// @Summary Listar dispositivos
// @Tags devices
// @Produce json
// @Param store_id query string false "Filtrar por tienda"
// @Param status query string false "Filtrar por estado"
// @Param imei query string false "Filtrar por IMEI"
// @Param owner query string false "Filtrar por titular"
// @Param limit query int false "Límite de página"
// @Param offset query int false "Offset de página"
// @Success 200 {array} dto.DeviceResponse
// @Security BearerAuth
// @Router /devices [get]
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	filter := repository.DeviceFilter{
		StoreID: c.Query("store_id"),
		Status:  c.Query("status"),
		IMEI:    c.Query("imei"),
		Owner:   c.Query("owner"),
	}
	list, err := h.devices.List(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.DeviceResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.NewDeviceResponse(d))
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary Bloquear o desbloquear un dispositivo
// @Description Persiste el estado y luego envía la notificación push best-effort. El campo notified indica si la notificación llegó al despachador; false no revierte el cambio.
// @Tags devices
// @Accept json
// @Produce json
// @Param id path string true "ID del dispositivo"
// @Param request body dto.UpdateDeviceStatusRequest true "Nuevo estado"
// @Success 200 {object} dto.DeviceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /devices/{id}/status [put]
func (h *DeviceHandler) SetStatus(c *fiber.Ctx) error {
	var req dto.UpdateDeviceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	device, notified, err := h.devices.SetStatus(c.Context(), c.Params("id"), req.Status, req.Reason, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	out := dto.NewDeviceResponse(device)
	out.Notified = &notified
	return c.JSON(out)
}

// Delete godoc
// @Summary Eliminar un dispositivo
// @Tags devices
// @Param id path string true "ID del dispositivo"
// @Success 204 "Eliminado"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /devices/{id} [delete]
func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	if err := h.devices.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
