package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"foodfund/internal/handlers"
	"foodfund/internal/repository"
)

func RegisterCategoryRoutes(router chi.Router, db *sql.DB, log *zap.Logger) {
	categoryHandler := handlers.NewCategoryHandler(repository.NewCategoryRepository(db), log)
	router.Get("/categories", categoryHandler.ListCategories)
	router.Get("/categories/{id}", categoryHandler.GetCategory)
}
