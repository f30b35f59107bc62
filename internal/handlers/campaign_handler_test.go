package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"foodfund/internal/interfaces"
	"foodfund/internal/models"
	"foodfund/internal/validation"
)

const (
	testCampaignID = "7d444840-9dc0-11d1-b245-5ffdce74fad2"
	testCategoryID = "550e8400-e29b-41d4-a716-446655440000"
)

type mockCampaignRepo struct {
	campaigns  map[string]*models.Campaign
	createErr  error
	updateErr  error
	lastFilter interfaces.CampaignFilter
	updated    *models.Campaign
}

var _ interfaces.CampaignRepository = (*mockCampaignRepo)(nil)

func newMockCampaignRepo() *mockCampaignRepo {
	return &mockCampaignRepo{campaigns: map[string]*models.Campaign{}}
}

func (m *mockCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	if m.createErr != nil {
		return m.createErr
	}
	campaign.ID = testCampaignID
	campaign.CreatedAt = time.Now().UTC()
	campaign.UpdatedAt = campaign.CreatedAt
	m.campaigns[campaign.ID] = campaign
	return nil
}

func (m *mockCampaignRepo) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (m *mockCampaignRepo) List(ctx context.Context, filter interfaces.CampaignFilter) ([]*models.Campaign, error) {
	m.lastFilter = filter
	var out []*models.Campaign
	for _, c := range m.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCampaignRepo) Summary(ctx context.Context, filter interfaces.CampaignFilter) (*models.CampaignSummary, error) {
	m.lastFilter = filter
	return &models.CampaignSummary{PendingCampaignCount: len(m.campaigns)}, nil
}

func (m *mockCampaignRepo) Update(ctx context.Context, id string, campaign *models.Campaign) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.campaigns[id]; !ok {
		return sql.ErrNoRows
	}
	m.updated = campaign
	m.campaigns[id] = campaign
	return nil
}

func (m *mockCampaignRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.campaigns[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.campaigns, id)
	return nil
}

type stubCoverImages struct {
	exists bool
	err    error
}

func (s stubCoverImages) Exists(ctx context.Context, fileKey string) (bool, error) {
	return s.exists, s.err
}

func newTestRouter(t *testing.T, repo *mockCampaignRepo, covers interfaces.CoverImageChecker) http.Handler {
	t.Helper()
	v, err := validation.NewCampaignValidator()
	if err != nil {
		t.Fatalf("NewCampaignValidator: %v", err)
	}
	h := NewCampaignHandler(repo, v, covers, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/campaigns", h.ListCampaigns)
	r.Post("/campaigns", h.CreateCampaign)
	r.Post("/campaigns/validate", h.ValidateCampaign)
	r.Get("/campaigns/summary", h.CampaignSummary)
	r.Get("/campaigns/{id}", h.GetCampaign)
	r.Patch("/campaigns/{id}", h.UpdateCampaign)
	r.Delete("/campaigns/{id}", h.DeleteCampaign)
	return r
}

func draftBody() map[string]any {
	return map[string]any{
		"title":                      "Bữa cơm cho em nhỏ",
		"description":                strings.Repeat("Chiến dịch nấu ăn cho trẻ em. ", 3),
		"location":                   "Huyện Mèo Vạc, Hà Giang",
		"coverImageFileKey":          "campaigns/cover/abc.jpg",
		"targetAmount":               "20000000",
		"ingredientBudgetPercentage": "60",
		"cookingBudgetPercentage":    "25",
		"deliveryBudgetPercentage":   "15",
		"fundraisingStartDate":       "2025-03-01",
		"fundraisingEndDate":         "2025-03-31",
		"ingredientPurchaseDate":     "2025-04-01",
		"cookingDate":                "2025-04-02",
		"deliveryDate":               "2025-04-02",
		"categoryId":                 testCategoryID,
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json (%d): %v: %s", w.Code, err, w.Body.String())
	}
	return w, resp
}

func fieldErrors(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	fields, ok := resp["fields"].(map[string]any)
	if !ok {
		t.Fatalf("expected fields in %v", resp)
	}
	return fields
}

func seedCampaign(t *testing.T, repo *mockCampaignRepo) *models.Campaign {
	t.Helper()
	w, _ := doJSON(t, newTestRouter(t, repo, nil), http.MethodPost, "/campaigns", draftBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("seed: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	return repo.campaigns[testCampaignID]
}

func TestCreateCampaignPersistsNormalizedCampaign(t *testing.T) {
	repo := newMockCampaignRepo()
	w, resp := doJSON(t, newTestRouter(t, repo, stubCoverImages{exists: true}), http.MethodPost, "/campaigns", draftBody())

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json got %q", ct)
	}
	if resp["id"] != testCampaignID || resp["status"] != string(models.CampaignStatusPending) {
		t.Fatalf("unexpected response %v", resp)
	}
	stored := repo.campaigns[testCampaignID]
	if !stored.IngredientBudgetPercentage.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("unexpected stored percentage %s", stored.IngredientBudgetPercentage)
	}
}

func TestCreateCampaignReportsAllFieldErrors(t *testing.T) {
	body := draftBody()
	body["ingredientBudgetPercentage"] = "40"
	body["cookingBudgetPercentage"] = "40"
	body["deliveryBudgetPercentage"] = "19.99"
	body["targetAmount"] = "0"
	body["categoryId"] = "not-a-uuid"

	repo := newMockCampaignRepo()
	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPost, "/campaigns", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if resp["error"] != "validation_error" {
		t.Fatalf("expected validation_error, got %v", resp)
	}
	fields := fieldErrors(t, resp)
	for _, key := range []string{validation.FieldIngredientBudgetPercentage, validation.FieldTargetAmount, validation.FieldCategoryID} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("expected error for %s in %v", key, fields)
		}
	}
	if len(repo.campaigns) != 0 {
		t.Fatal("rejected campaign must not be stored")
	}
}

func TestCreateCampaignUnknownCategory(t *testing.T) {
	repo := newMockCampaignRepo()
	repo.createErr = errors.Join(errors.New("failed to create campaign"), &pq.Error{Code: "23503", Constraint: "campaigns_category_id_fkey"})

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPost, "/campaigns", draftBody())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if _, ok := fieldErrors(t, resp)[validation.FieldCategoryID]; !ok {
		t.Fatalf("expected categoryId error, got %v", resp)
	}
}

func TestCreateCampaignAmountOutOfRange(t *testing.T) {
	repo := newMockCampaignRepo()
	repo.createErr = fmt.Errorf("failed to create campaign: %w", &pq.Error{Code: "22003", Message: "numeric field overflow"})
	body := draftBody()
	body["targetAmount"] = "123456789012345678901234"

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPost, "/campaigns", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if _, ok := fieldErrors(t, resp)[validation.FieldTargetAmount]; !ok {
		t.Fatalf("expected targetAmount error, got %v", resp)
	}
}

func TestCreateCampaignMissingCoverImage(t *testing.T) {
	repo := newMockCampaignRepo()
	w, resp := doJSON(t, newTestRouter(t, repo, stubCoverImages{exists: false}), http.MethodPost, "/campaigns", draftBody())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if _, ok := fieldErrors(t, resp)[validation.FieldCoverImageFileKey]; !ok {
		t.Fatalf("expected coverImageFileKey error, got %v", resp)
	}
}

func TestCreateCampaignCoverImageLookupFails(t *testing.T) {
	repo := newMockCampaignRepo()
	w, _ := doJSON(t, newTestRouter(t, repo, stubCoverImages{err: errors.New("timeout")}), http.MethodPost, "/campaigns", draftBody())

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCreateCampaignInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/campaigns", strings.NewReader("{"))
	w := httptest.NewRecorder()
	newTestRouter(t, newMockCampaignRepo(), nil).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestValidateCampaignDoesNotPersist(t *testing.T) {
	repo := newMockCampaignRepo()
	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPost, "/campaigns/validate", draftBody())

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if resp["valid"] != true {
		t.Fatalf("expected valid=true, got %v", resp)
	}
	if len(repo.campaigns) != 0 {
		t.Fatal("validate must not store the campaign")
	}
}

func TestGetCampaignNotFoundReturnsJSON(t *testing.T) {
	w, resp := doJSON(t, newTestRouter(t, newMockCampaignRepo(), nil), http.MethodGet, "/campaigns/"+testCampaignID, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
	if resp["error"] == nil {
		t.Fatalf("expected error field, got %v", resp)
	}
}

func TestGetCampaignRejectsNonUUID(t *testing.T) {
	w, _ := doJSON(t, newTestRouter(t, newMockCampaignRepo(), nil), http.MethodGet, "/campaigns/c1", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestGetCampaignRejectsNonCanonicalUUID(t *testing.T) {
	h := newTestRouter(t, newMockCampaignRepo(), nil)
	for _, id := range []string{"urn:uuid:" + testCampaignID, strings.ReplaceAll(testCampaignID, "-", "")} {
		w, _ := doJSON(t, h, http.MethodGet, "/campaigns/"+id, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d (%s)", id, w.Code, w.Body.String())
		}
	}
}

func TestGetCampaignAcceptsUppercaseUUID(t *testing.T) {
	w, resp := doJSON(t, newTestRouter(t, newMockCampaignRepo(), nil), http.MethodGet, "/campaigns/"+strings.ToUpper(testCampaignID), nil)

	if w.Code != http.StatusNotFound || resp["error"] != "campaign_not_found" {
		t.Fatalf("expected 404 campaign_not_found got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUpdateCampaignRechecksBudgetAgainstStored(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo)

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPatch, "/campaigns/"+testCampaignID,
		map[string]any{"deliveryBudgetPercentage": "20"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if fieldErrors(t, resp)[validation.FieldIngredientBudgetPercentage] != validation.MessageBudgetSum {
		t.Fatalf("expected budget sum error, got %v", resp)
	}
	if repo.updated != nil {
		t.Fatal("rejected update must not be stored")
	}
}

func TestUpdateCampaignAppliesPatch(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo)

	w, _ := doJSON(t, newTestRouter(t, repo, nil), http.MethodPatch, "/campaigns/"+testCampaignID, map[string]any{
		"title":                    "Bữa cơm mùa đông ấm áp",
		"cookingBudgetPercentage":  "30",
		"deliveryBudgetPercentage": "20",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("60+30+20 is over budget, expected 400 got %d (%s)", w.Code, w.Body.String())
	}

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPatch, "/campaigns/"+testCampaignID, map[string]any{
		"title":                      "Bữa cơm mùa đông ấm áp",
		"ingredientBudgetPercentage": "50",
		"cookingBudgetPercentage":    "30",
		"deliveryBudgetPercentage":   "20",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if resp["title"] != "Bữa cơm mùa đông ấm áp" {
		t.Fatalf("unexpected response %v", resp)
	}
	if !repo.updated.CookingBudgetPercentage.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("unexpected stored cooking budget %s", repo.updated.CookingBudgetPercentage)
	}
}

func TestUpdateCampaignRejectsDateOrderAfterMerge(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo)

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPatch, "/campaigns/"+testCampaignID,
		map[string]any{"deliveryDate": "2025-03-15"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if fieldErrors(t, resp)[validation.FieldDeliveryDate] != validation.MessageMilestoneOrder {
		t.Fatalf("expected milestone error, got %v", resp)
	}
}

func TestUpdateCampaignOnlyWhilePending(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo).Status = models.CampaignStatusActive

	w, _ := doJSON(t, newTestRouter(t, repo, nil), http.MethodPatch, "/campaigns/"+testCampaignID,
		map[string]any{"location": "Quận 8, TP.HCM"})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUpdateCampaignStatusChangedBeforeWrite(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo)
	repo.updateErr = interfaces.ErrCampaignNotEditable

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPatch, "/campaigns/"+testCampaignID,
		map[string]any{"location": "Quận 8, TP.HCM"})

	if w.Code != http.StatusConflict || resp["error"] != "campaign_not_editable" {
		t.Fatalf("expected 409 campaign_not_editable got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUpdateCampaignAmountOutOfRange(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo)
	repo.updateErr = &pq.Error{Code: "22003"}

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodPatch, "/campaigns/"+testCampaignID,
		map[string]any{"targetAmount": "123456789012345678901234"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if _, ok := fieldErrors(t, resp)[validation.FieldTargetAmount]; !ok {
		t.Fatalf("expected targetAmount error, got %v", resp)
	}
}

func TestListCampaignsCapsLimit(t *testing.T) {
	repo := newMockCampaignRepo()
	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodGet, "/campaigns?limit=500&status=pending", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if _, ok := resp["campaigns"].([]any); !ok {
		t.Fatalf("expected campaigns array, got %v", resp)
	}
	if repo.lastFilter.Limit != maxListLimit || repo.lastFilter.Status != "pending" {
		t.Fatalf("unexpected filter %+v", repo.lastFilter)
	}
}

func TestListCampaignsRejectsBadQuery(t *testing.T) {
	for _, q := range []string{"limit=abc", "limit=0", "offset=-1", "category_id=xyz"} {
		w, _ := doJSON(t, newTestRouter(t, newMockCampaignRepo(), nil), http.MethodGet, "/campaigns?"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", q, w.Code)
		}
	}
}

func TestCampaignSummary(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo)

	w, resp := doJSON(t, newTestRouter(t, repo, nil), http.MethodGet, "/campaigns/summary?category_id="+testCategoryID, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if resp["pendingCampaignCount"] != float64(1) || repo.lastFilter.CategoryID != testCategoryID {
		t.Fatalf("unexpected summary %v (filter %+v)", resp, repo.lastFilter)
	}
}

func TestDeleteCampaign(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(t, repo)
	router := newTestRouter(t, repo, nil)

	w, resp := doJSON(t, router, http.MethodDelete, "/campaigns/"+testCampaignID, nil)
	if w.Code != http.StatusOK || resp["id"] != testCampaignID {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, router, http.MethodDelete, "/campaigns/"+testCampaignID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
