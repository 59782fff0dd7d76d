package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	JWTSecret string
	Auth      *AuthHandler
	Inventory *InventoryHandler
	Products  *ProductHandler
	Stores    *StoreHandler
	Devices   *DeviceHandler
	Audit     *AuditHandler
}

// Router registra todas las rutas bajo /api. Las rutas de auth son públicas;
// el resto exige Bearer Token. Las operaciones destructivas y la lectura de
// auditoría quedan restringidas a admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	inventory := protected.Group("/inventory")
	inventory.Get("", deps.Inventory.List)
	inventory.Post("/moved", deps.Inventory.RecordMovement)
	inventory.Post("/store-moved", deps.Inventory.TransferStock)
	inventory.Get("/:id/movements", deps.Inventory.ListMovements)
	inventory.Put("/:id", deps.Inventory.SetBalance)
	inventory.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Inventory.Delete)

	products := protected.Group("/products")
	products.Get("", deps.Products.List)
	products.Post("", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), deps.Products.Create)
	products.Get("/:id", deps.Products.Get)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), deps.Products.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Products.Delete)

	stores := protected.Group("/stores")
	stores.Get("", deps.Stores.List)
	stores.Post("", RequireRole(entity.RoleAdmin), deps.Stores.Create)
	stores.Get("/:id", deps.Stores.Get)
	stores.Put("/:id", RequireRole(entity.RoleAdmin), deps.Stores.Update)
	stores.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Stores.Delete)

	devices := protected.Group("/devices")
	devices.Get("", deps.Devices.List)
	devices.Post("", deps.Devices.Create)
	devices.Get("/:id", deps.Devices.Get)
	devices.Put("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleVendedor), deps.Devices.SetStatus)
	devices.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Devices.Delete)

	protected.Get("/users", RequireRole(entity.RoleAdmin), deps.Auth.ListUsers)
	protected.Get("/audit-logs", RequireRole(entity.RoleAdmin), deps.Audit.List)
}
