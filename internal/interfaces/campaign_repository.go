package interfaces

import (
	"context"

	"foodfund/internal/models"
)

// CampaignFilter defines the filter criteria for listing campaigns
type CampaignFilter struct {
	CategoryID string
	Status     string
	Limit      int
	Offset     int
}

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]*models.Campaign, error)
	Summary(ctx context.Context, filter CampaignFilter) (*models.CampaignSummary, error)
	// Update overwrites the editable fields of a pending campaign. Status is
	// never written.
	Update(ctx context.Context, id string, campaign *models.Campaign) error
	Delete(ctx context.Context, id string) error
}
