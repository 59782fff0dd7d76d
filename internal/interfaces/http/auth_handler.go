package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/application/auth"
	"github.com/credimovil/backoffice-api/internal/application/dto"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/pkg/validator"
)

// AuthHandler expone registro y login.
type AuthHandler struct {
	auth *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(a *auth.UseCase) *AuthHandler {
	return &AuthHandler{auth: a}
}

// Register godoc
// @Summary Registrar un usuario del back-office
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Usuario"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email ya registrado"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	token, err := h.auth.Register(c.Context(), req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{Token: token, Role: req.Role})
}

// Login godoc
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if err := validator.Struct(req); err != nil {
		return writeError(c, err)
	}
	token, role, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: token, Role: role})
}

// ListUsers godoc
// @Summary Listar usuarios del back-office
// @Tags auth
// @Produce json
// @Param limit query int false "Límite de página"
// @Param offset query int false "Offset de página"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	list, err := h.auth.ListUsers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.NewUserResponse(u))
	}
	return c.JSON(out)
}
