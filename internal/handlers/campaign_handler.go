package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"foodfund/internal/interfaces"
	"foodfund/internal/models"
	"foodfund/internal/validation"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

const (
	messageCoverImageMissing = "Ảnh bìa chưa được tải lên hoặc đã bị xoá"
	messageCategoryNotFound  = "Danh mục không tồn tại"
	messageAmountOutOfRange  = "Số tiền mục tiêu vượt quá giới hạn cho phép"
)

type CampaignHandler struct {
	repo        interfaces.CampaignRepository
	validator   *validation.CampaignValidator
	coverImages interfaces.CoverImageChecker
	log         *zap.Logger
}

// NewCampaignHandler wires the campaign endpoints. coverImages may be nil, in
// which case coverImageFileKey is only checked for presence.
func NewCampaignHandler(repo interfaces.CampaignRepository, v *validation.CampaignValidator, coverImages interfaces.CoverImageChecker, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{
		repo:        repo,
		validator:   v,
		coverImages: coverImages,
		log:         log.Named("campaigns"),
	}
}

// ValidateCampaign handles POST /api/v1/campaigns/validate
// @Tags Campaigns
// @Summary Validate a campaign draft without saving it
// @Accept json
// @Produce json
// @Param draft body models.CampaignDraft true "Campaign draft"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/campaigns/validate [post]
func (h *CampaignHandler) ValidateCampaign(w http.ResponseWriter, r *http.Request) {
	var draft models.CampaignDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	res := h.validator.ValidateCreate(draft)
	if !res.Accepted() {
		h.logRejected("validate", res.Errors)
		writeValidationError(w, res.Errors)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "campaign": res.Value})
}

// CreateCampaign handles POST /api/v1/campaigns
// @Tags Campaigns
// @Summary Create a campaign
// @Accept json
// @Produce json
// @Param draft body models.CampaignDraft true "Campaign draft"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns [post]
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var draft models.CampaignDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	res := h.validator.ValidateCreate(draft)
	if !res.Accepted() {
		h.logRejected("create", res.Errors)
		writeValidationError(w, res.Errors)
		return
	}
	campaign := res.Value

	if !h.checkCoverImage(w, r, campaign.CoverImageFileKey) {
		return
	}

	campaign.Status = models.CampaignStatusPending
	if err := h.repo.Create(r.Context(), campaign); err != nil {
		if writeConstraintError(w, err) {
			return
		}
		h.log.Error("create campaign failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_campaign_failed", "Failed to create campaign")
		return
	}

	h.log.Info("campaign created", zap.String("id", campaign.ID), zap.String("category_id", campaign.CategoryID))
	writeJSON(w, http.StatusCreated, campaign)
}

// GetCampaign handles GET /api/v1/campaigns/{id}
// @Tags Campaigns
// @Summary Get a campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	campaign, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// ListCampaigns handles GET /api/v1/campaigns
// @Tags Campaigns
// @Summary List campaigns
// @Produce json
// @Param status query string false "Status filter"
// @Param category_id query string false "Category filter"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCampaignFilter(r)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	campaigns, err := h.repo.List(r.Context(), filter)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_campaigns_failed", "Failed to list campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"campaigns": campaigns,
		"limit":     filter.Limit,
		"offset":    filter.Offset,
	})
}

// CampaignSummary handles GET /api/v1/campaigns/summary
// @Tags Campaigns
// @Summary Campaign counts and total target amount
// @Produce json
// @Param category_id query string false "Category filter"
// @Success 200 {object} models.CampaignSummary
// @Router /api/v1/campaigns/summary [get]
func (h *CampaignHandler) CampaignSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCampaignFilter(r)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	summary, err := h.repo.Summary(r.Context(), interfaces.CampaignFilter{CategoryID: filter.CategoryID, Status: filter.Status})
	if err != nil {
		h.log.Error("campaign summary failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "campaign_summary_failed", "Failed to summarize campaigns")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// UpdateCampaign handles PATCH /api/v1/campaigns/{id}
// @Tags Campaigns
// @Summary Partially update a pending campaign
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param update body models.CampaignUpdate true "Fields to change"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [patch]
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	var update models.CampaignUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	res := h.validator.ValidateUpdate(update)
	if !res.Accepted() {
		h.logRejected("update", res.Errors)
		writeValidationError(w, res.Errors)
		return
	}

	existing, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}
	if existing.Status != models.CampaignStatusPending {
		writeJSONErrorResponse(w, http.StatusConflict, "campaign_not_editable", "Only pending campaigns can be edited")
		return
	}

	// The patch may touch only part of a cross-field rule, so re-check the
	// rules against the merged record.
	res.Value.Apply(existing)
	if errs := h.validator.CheckInvariants(existing); errs != nil {
		h.logRejected("update", errs)
		writeValidationError(w, errs)
		return
	}

	if res.Value.CoverImageFileKey != nil && !h.checkCoverImage(w, r, existing.CoverImageFileKey) {
		return
	}

	if err := h.repo.Update(r.Context(), id, existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "campaign_not_found", "Campaign not found")
			return
		}
		if errors.Is(err, interfaces.ErrCampaignNotEditable) {
			writeJSONErrorResponse(w, http.StatusConflict, "campaign_not_editable", "Only pending campaigns can be edited")
			return
		}
		if writeConstraintError(w, err) {
			return
		}
		h.log.Error("update campaign failed", zap.String("id", id), zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "update_campaign_failed", "Failed to update campaign")
		return
	}

	writeJSON(w, http.StatusOK, existing)
}

// DeleteCampaign handles DELETE /api/v1/campaigns/{id}
// @Tags Campaigns
// @Summary Delete a campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	h.log.Info("campaign deleted", zap.String("id", id))
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "campaign deleted successfully",
		"id":      id,
	})
}

func (h *CampaignHandler) checkCoverImage(w http.ResponseWriter, r *http.Request, fileKey string) bool {
	if h.coverImages == nil {
		return true
	}

	exists, err := h.coverImages.Exists(r.Context(), fileKey)
	if err != nil {
		h.log.Error("cover image lookup failed", zap.String("file_key", fileKey), zap.Error(err))
		writeJSONErrorResponse(w, http.StatusBadGateway, "cover_image_check_failed", "Failed to verify cover image")
		return false
	}
	if !exists {
		writeValidationError(w, map[string]string{validation.FieldCoverImageFileKey: messageCoverImageMissing})
		return false
	}
	return true
}

func (h *CampaignHandler) writeLookupError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONErrorResponse(w, http.StatusNotFound, "campaign_not_found", "Campaign not found")
		return
	}
	h.log.Error("campaign lookup failed", zap.String("id", id), zap.Error(err))
	writeJSONErrorResponse(w, http.StatusInternalServerError, "campaign_lookup_failed", "Failed to fetch campaign")
}

func (h *CampaignHandler) logRejected(op string, errs validation.FieldErrors) {
	h.log.Debug("campaign rejected", zap.String("op", op), zap.Strings("fields", errs.Fields()))
}

func campaignID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !isCanonicalUUID(id) {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_id", "Campaign ID must be a valid UUID")
		return "", false
	}
	return id, true
}

func parseCampaignFilter(r *http.Request) (interfaces.CampaignFilter, error) {
	q := r.URL.Query()
	filter := interfaces.CampaignFilter{
		Status:     q.Get("status"),
		CategoryID: q.Get("category_id"),
		Limit:      defaultListLimit,
	}

	if filter.CategoryID != "" {
		if !isCanonicalUUID(filter.CategoryID) {
			return filter, errors.New("category_id must be a valid UUID")
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return filter, errors.New("limit must be a positive integer")
		}
		filter.Limit = min(n, maxListLimit)
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errors.New("offset must be a non-negative integer")
		}
		filter.Offset = n
	}
	return filter, nil
}

// isCanonicalUUID accepts only the hyphenated 36-character form, matching the
// categoryId rule of the campaign validator.
func isCanonicalUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil && len(s) == 36
}

// writeConstraintError turns Postgres rejections caused by the submitted values
// into field errors. It reports whether a response was written.
func writeConstraintError(w http.ResponseWriter, err error) bool {
	switch {
	case isCategoryViolation(err):
		writeValidationError(w, map[string]string{validation.FieldCategoryID: messageCategoryNotFound})
	case isNumericOverflow(err):
		writeValidationError(w, map[string]string{validation.FieldTargetAmount: messageAmountOutOfRange})
	default:
		return false
	}
	return true
}

// isNumericOverflow reports a value too large for its NUMERIC column. Budget
// percentages are bounded by the validator, so only target_amount can overflow.
func isNumericOverflow(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22003"
}

// isCategoryViolation reports a foreign key failure on campaigns.category_id.
func isCategoryViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503" && pqErr.Constraint == "campaigns_category_id_fkey"
}
