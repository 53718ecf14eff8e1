package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/stocktrackhq/stocktrack-api/internal/application/auth"
	"github.com/stocktrackhq/stocktrack-api/internal/application/inventory"
	"github.com/stocktrackhq/stocktrack-api/internal/application/invite"
	"github.com/stocktrackhq/stocktrack-api/internal/application/reports"
	"github.com/stocktrackhq/stocktrack-api/internal/application/usecase"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ItemUC    *inventory.ItemUseCase
	FeedUC    *inventory.ActivityFeedUseCase
	BatchUC   *inventory.BatchAdjustUseCase
	InviteUC  *invite.InviteUseCase
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
	StatsUC   *usecase.StatsUseCase
	ReportUC  *reports.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las rutas públicas van primero; todo lo
// demás pasa por AuthMiddleware y las rutas de gestión exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Canje de invitaciones (público, con rate limit: el token es la credencial)
	inviteHandler := NewInviteHandler(deps.InviteUC)
	inviteLimiter := limiter.New(limiter.Config{Max: 30, Expiration: time.Minute})
	api.Get("/invites/:token", inviteLimiter, inviteHandler.Preview)
	api.Post("/invites/:token/accept", inviteLimiter, inviteHandler.Accept)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido; umbral solo admin)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/barcode/:code", itemHandler.GetByBarcode)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.UpdateQuantity)
	items.Delete("/:id", itemHandler.Delete)
	items.Put("/:id/threshold", RequireRole(entity.RoleAdmin), itemHandler.UpdateThreshold)

	// Actividades: feed, historial por ítem y lotes (protegido)
	activityHandler := NewActivityHandler(deps.FeedUC, deps.BatchUC)
	items.Get("/:id/activities", activityHandler.ListByItem)
	activities := protected.Group("/activities")
	activities.Get("/", activityHandler.List)
	activities.Post("/batch", activityHandler.BatchAdjust)

	// Dashboard y reportes (protegido)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.GetStats)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", reportHandler.InventoryPDF)

	// Gestión de miembros (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.SoftDelete)
	users.Delete("/:id/permanent", userHandler.PermanentDelete)

	// Invitaciones: emisión y listado (solo admin)
	invites := protected.Group("/invites", RequireRole(entity.RoleAdmin))
	invites.Post("/", inviteHandler.Issue)
	invites.Get("/", inviteHandler.List)

	// Company del token (info para todos; umbral y purga solo admin)
	company := protected.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/", companyHandler.Info)
	company.Put("/threshold", RequireRole(entity.RoleAdmin), companyHandler.UpdateThreshold)
	company.Delete("/", RequireRole(entity.RoleAdmin), companyHandler.Purge)
}
