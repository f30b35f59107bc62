package routes

import (
	"database/sql"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"foodfund/internal/config"
	"foodfund/internal/handlers"
	"foodfund/internal/interfaces"
	"foodfund/internal/services"
	"foodfund/internal/validation"
)

// SetupRoutes builds the HTTP router. s3Config may be nil when cover image
// checks are disabled.
func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config, log *zap.Logger) (*chi.Mux, error) {
	v, err := validation.NewCampaignValidator(
		validation.WithBudgetTolerance(decimal.NewFromFloat(cfg.BudgetSumTolerance)),
	)
	if err != nil {
		return nil, fmt.Errorf("build campaign validator: %w", err)
	}

	var coverImages interfaces.CoverImageChecker
	if cfg.CoverImageCheck && s3Config != nil && s3Config.Client != nil {
		coverImages = services.NewS3CoverImageChecker(s3Config.Client, s3Config.Bucket)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health(db))

	RegisterSwaggerRoutes(r)

	r.Route("/api/v1", func(r chi.Router) {
		RegisterCampaignRoutes(r, db, v, coverImages, log)
		RegisterCategoryRoutes(r, db, log)
	})

	return r, nil
}
