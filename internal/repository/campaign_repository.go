package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"foodfund/internal/interfaces"
	"foodfund/internal/models"
)

const campaignColumns = `
	id, title, description, location, cover_image_file_key,
	target_amount, received_amount,
	ingredient_budget_percentage, cooking_budget_percentage, delivery_budget_percentage,
	fundraising_start_date, fundraising_end_date, ingredient_purchase_date, cooking_date, delivery_date,
	category_id, status, created_at, updated_at`

type campaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) interfaces.CampaignRepository {
	return &campaignRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Location,
		&c.CoverImageFileKey,
		&c.TargetAmount,
		&c.ReceivedAmount,
		&c.IngredientBudgetPercentage,
		&c.CookingBudgetPercentage,
		&c.DeliveryBudgetPercentage,
		&c.FundraisingStartDate,
		&c.FundraisingEndDate,
		&c.IngredientPurchaseDate,
		&c.CookingDate,
		&c.DeliveryDate,
		&c.CategoryID,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusPending
	}

	query := `
		INSERT INTO campaigns (
			title, description, location, cover_image_file_key, target_amount,
			ingredient_budget_percentage, cooking_budget_percentage, delivery_budget_percentage,
			fundraising_start_date, fundraising_end_date, ingredient_purchase_date, cooking_date, delivery_date,
			category_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, received_amount, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		campaign.Title,
		campaign.Description,
		campaign.Location,
		campaign.CoverImageFileKey,
		campaign.TargetAmount,
		campaign.IngredientBudgetPercentage,
		campaign.CookingBudgetPercentage,
		campaign.DeliveryBudgetPercentage,
		campaign.FundraisingStartDate,
		campaign.FundraisingEndDate,
		campaign.IngredientPurchaseDate,
		campaign.CookingDate,
		campaign.DeliveryDate,
		campaign.CategoryID,
		campaign.Status,
	).Scan(&campaign.ID, &campaign.ReceivedAmount, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// filterClauses renders the WHERE conditions for filter, numbering
// placeholders from 1.
func filterClauses(filter interfaces.CampaignFilter) (string, []any) {
	var (
		args  []any
		where []string
	)

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// List retrieves campaigns newest first.
func (r *campaignRepository) List(ctx context.Context, filter interfaces.CampaignFilter) ([]*models.Campaign, error) {
	where, args := filterClauses(filter)
	query := `SELECT ` + campaignColumns + ` FROM campaigns` + where + ` ORDER BY created_at DESC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepository) Summary(ctx context.Context, filter interfaces.CampaignFilter) (*models.CampaignSummary, error) {
	where, args := filterClauses(filter)
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(target_amount), 0)
		FROM campaigns` + where

	var summary models.CampaignSummary
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&summary.PendingCampaignCount,
		&summary.ActiveCampaignCount,
		&summary.TotalTargetAmount,
	); err != nil {
		return nil, fmt.Errorf("failed to summarize campaigns: %w", err)
	}
	return &summary, nil
}

// Update overwrites the editable fields of the campaign with the given ID.
func (r *campaignRepository) Update(ctx context.Context, id string, campaign *models.Campaign) error {
	query := `
		UPDATE campaigns
		SET title = $1,
			description = $2,
			location = $3,
			cover_image_file_key = $4,
			target_amount = $5,
			ingredient_budget_percentage = $6,
			cooking_budget_percentage = $7,
			delivery_budget_percentage = $8,
			fundraising_start_date = $9,
			fundraising_end_date = $10,
			ingredient_purchase_date = $11,
			cooking_date = $12,
			delivery_date = $13,
			category_id = $14,
			updated_at = NOW()
		WHERE id = $15 AND status = 'pending'
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		campaign.Title,
		campaign.Description,
		campaign.Location,
		campaign.CoverImageFileKey,
		campaign.TargetAmount,
		campaign.IngredientBudgetPercentage,
		campaign.CookingBudgetPercentage,
		campaign.DeliveryBudgetPercentage,
		campaign.FundraisingStartDate,
		campaign.FundraisingEndDate,
		campaign.IngredientPurchaseDate,
		campaign.CookingDate,
		campaign.DeliveryDate,
		campaign.CategoryID,
		id,
	).Scan(&campaign.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.missingOrLocked(ctx, id)
		}
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return nil
}

// missingOrLocked tells a deleted campaign apart from one that is no longer pending.
func (r *campaignRepository) missingOrLocked(ctx context.Context, id string) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM campaigns WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check campaign: %w", err)
	}
	if exists {
		return interfaces.ErrCampaignNotEditable
	}
	return sql.ErrNoRows
}

func (r *campaignRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM campaigns WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
