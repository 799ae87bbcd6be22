package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
	infraai "github.com/bapesu/bapesu-api/internal/infrastructure/ai"
	"github.com/bapesu/bapesu-api/internal/infrastructure/identity"
	"github.com/bapesu/bapesu-api/internal/infrastructure/media"
	infrapdf "github.com/bapesu/bapesu-api/internal/infrastructure/pdf"
	"github.com/bapesu/bapesu-api/internal/infrastructure/postgres"
	"github.com/bapesu/bapesu-api/internal/infrastructure/qr"
	httpRouter "github.com/bapesu/bapesu-api/internal/interfaces/http"
	"github.com/bapesu/bapesu-api/pkg/config"
	"github.com/bapesu/bapesu-api/pkg/logger"
)

const maxBodySize = 12 * 1024 * 1024

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: os.Getenv("LOG_LEVEL"),
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	ratingRepo := postgres.NewRatingRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// la bitácora de actividad la alimentan todos los casos de uso administrativos
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, log)

	identityProvider := identity.NewSupabaseAdmin(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	if cfg.Supabase.URL == "" || cfg.Supabase.ServiceKey == "" {
		log.Warn().Msg("SUPABASE_URL/SUPABASE_SERVICE_KEY vacíos: los cambios de usuario no se propagan a Auth")
	}

	productUC := usecase.NewProductUseCase(productRepo, analyticsUC)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, analyticsUC)
	userUC := usecase.NewUserUseCase(userRepo, identityProvider, analyticsUC, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, txRunner, infrapdf.NewReceiptGenerator("Bapesu"), analyticsUC)
	ratingUC := usecase.NewRatingUseCase(ratingRepo, analyticsUC)
	toolsUC := buildTools(cfg, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 45,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    maxBodySize,
		ErrorHandler: httpRouter.NewErrorHandler(log, cfg.App.IsDevelopment()),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.Origins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bapesu API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		OrderUC:     orderUC,
		RatingUC:    ratingUC,
		UserUC:      userUC,
		AnalyticsUC: analyticsUC,
		ToolsUC:     toolsUC,
		Users:       userRepo,
		DB:          pool,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// buildTools conecta los adaptadores externos que tengan credenciales.
// Una herramienta sin credenciales responde 503.
func buildTools(cfg *config.Config, log *logger.Logger) *usecase.ToolsUseCase {
	var descriptions ports.TextGenerator
	switch strings.ToLower(cfg.AI.DescriptionProvider) {
	case "anthropic":
		if cfg.AI.AnthropicAPIKey != "" {
			descriptions = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		}
	default:
		if cfg.AI.DeepSeekAPIKey != "" {
			descriptions = infraai.NewDeepSeekService(cfg.AI.DeepSeekAPIKey, cfg.AI.DeepSeekURL,
				cfg.AI.DeepSeekModel, cfg.AI.DeepSeekTemperature, cfg.AI.DeepSeekMaxTokens)
		}
	}

	var videos ports.TextGenerator
	if cfg.AI.GeminiAPIKey != "" {
		videos = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	var background ports.BackgroundRemover
	if cfg.Tools.RemoveBGAPIKey != "" {
		background = media.NewRemoveBGClient(cfg.Tools.RemoveBGAPIKey)
	}

	var speech ports.SpeechSynthesizer
	if cfg.Tools.GoogleTTSAPIKey != "" {
		speech = media.NewGoogleTTSClient(cfg.Tools.GoogleTTSAPIKey)
	}

	log.Info().
		Bool("descriptions", descriptions != nil).
		Bool("videos", videos != nil).
		Bool("remove_bg", background != nil).
		Bool("tts", speech != nil).
		Msg("herramientas configuradas")

	return usecase.NewToolsUseCase(descriptions, videos, background, qr.NewGenerator(), speech)
}
