package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bapesu/bapesu-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	OrderUC     *usecase.OrderUseCase
	RatingUC    *usecase.RatingUseCase
	UserUC      *usecase.UserUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	ToolsUC     *usecase.ToolsUseCase
	Users       UserLookup
	DB          Pinger
	JWTSecret   string
}

// Router registra las rutas de la API.
// Los grupos mixtos (público + admin) llevan el middleware por ruta: en Fiber el
// middleware de un grupo se aplica a todo el prefijo.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", Hello)
	app.Get("/api", Hello)
	app.Get("/health", Health(deps.DB))

	v1 := app.Group("/api/v1")
	auth := RequireAuthenticated(deps.JWTSecret)
	admin := RequireAdmin(deps.Users)

	productHandler := NewProductHandler(deps.ProductUC)
	ratingHandler := NewRatingHandler(deps.RatingUC)
	products := v1.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/categories", productHandler.Categories)
	products.Get("/stats", auth, admin, productHandler.Stats)
	products.Post("/", auth, admin, productHandler.Create)
	products.Get("/:id/ratings/stats", ratingHandler.ProductStats)
	products.Get("/:id/ratings", ratingHandler.ListForProduct)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", auth, admin, productHandler.Update)
	products.Delete("/:id/hard-delete", auth, admin, productHandler.HardDelete)
	products.Delete("/:id", auth, admin, productHandler.Delete)
	products.Patch("/:id/stock", auth, admin, productHandler.UpdateStock)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := v1.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/featured", categoryHandler.Featured)
	categories.Get("/stats", auth, admin, categoryHandler.Stats)
	categories.Get("/slug/:slug", categoryHandler.GetBySlug)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", auth, admin, categoryHandler.Create)
	categories.Put("/:id", auth, admin, categoryHandler.Update)
	categories.Delete("/:id", auth, admin, categoryHandler.Delete)

	// Rutas autenticadas
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := v1.Group("/orders", auth)
	orders.Get("/", orderHandler.ListMine)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Get("/:id", orderHandler.GetMine)

	userHandler := NewUserHandler(deps.UserUC)
	// middleware por ruta: el prefijo /user también coincide con /users
	v1.Get("/user/profile", auth, userHandler.Profile)
	v1.Get("/user/orders", auth, orderHandler.ListMine)
	v1.Get("/user/ratings", auth, ratingHandler.ListMine)

	ratings := v1.Group("/product-ratings", auth)
	ratings.Post("/", ratingHandler.Create)
	ratings.Get("/can-rate", ratingHandler.CanRate)
	ratings.Put("/:id", ratingHandler.Update)
	ratings.Delete("/:id", ratingHandler.Delete)

	toolsHandler := NewToolsHandler(deps.ToolsUC)
	tools := v1.Group("/tools", auth)
	tools.Post("/remove-background", toolsHandler.RemoveBackground)
	tools.Post("/generate-description", toolsHandler.GenerateDescription)
	tools.Post("/generate-things-videos", toolsHandler.GenerateVideoIdea)
	tools.Post("/qr_generator", toolsHandler.GenerateQR)
	tools.Post("/text_x_voz", toolsHandler.TextToSpeech)

	// Administración
	adm := v1.Group("/admin", auth, admin)
	adminOrders := adm.Group("/orders")
	adminOrders.Get("/", orderHandler.ListAll)
	adminOrders.Get("/stats", orderHandler.Stats)
	adminOrders.Get("/:id", orderHandler.Get)
	adminOrders.Patch("/:id/status", orderHandler.UpdateStatus)
	adminOrders.Put("/:id", orderHandler.Update)
	adminOrders.Delete("/:id", orderHandler.Delete)

	adminRatings := adm.Group("/ratings")
	adminRatings.Get("/pending", ratingHandler.ListPending)
	adminRatings.Patch("/:id/approve", ratingHandler.Approve)
	adminRatings.Patch("/:id/reject", ratingHandler.Reject)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	adminAnalytics := adm.Group("/analytics")
	adminAnalytics.Get("/dashboard", analyticsHandler.Dashboard)
	adminAnalytics.Get("/activity", analyticsHandler.Activity)
	adminAnalytics.Post("/refresh-metrics", analyticsHandler.RefreshMetrics)

	users := v1.Group("/users", auth, admin)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/stats", userHandler.Stats)
	users.Get("/recent", userHandler.Recent)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Patch("/:id/activate", userHandler.Activate)
	users.Patch("/:id/deactivate", userHandler.Deactivate)
}
