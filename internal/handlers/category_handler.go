package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"foodfund/internal/interfaces"
)

type CategoryHandler struct {
	repo interfaces.CategoryRepository
	log  *zap.Logger
}

func NewCategoryHandler(repo interfaces.CategoryRepository, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{repo: repo, log: log.Named("categories")}
}

// ListCategories handles GET /api/v1/categories
// @Tags Categories
// @Summary List campaign categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error("list categories failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_categories_failed", "Failed to list categories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// GetCategory handles GET /api/v1/categories/{id}
// @Tags Categories
// @Summary Get a campaign category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Category
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !isCanonicalUUID(id) {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_id", "Category ID must be a valid UUID")
		return
	}

	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "category_not_found", "Category not found")
			return
		}
		h.log.Error("get category failed", zap.String("id", id), zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_category_failed", "Failed to fetch category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}
