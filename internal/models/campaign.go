package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusApproved  CampaignStatus = "approved"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// CampaignDraft is the raw create payload as the campaign form submits it.
type CampaignDraft struct {
	Title                      string `json:"title"`
	Description                string `json:"description"`
	Location                   string `json:"location"`
	CoverImageFileKey          string `json:"coverImageFileKey"`
	TargetAmount               string `json:"targetAmount"`
	IngredientBudgetPercentage string `json:"ingredientBudgetPercentage"`
	CookingBudgetPercentage    string `json:"cookingBudgetPercentage"`
	DeliveryBudgetPercentage   string `json:"deliveryBudgetPercentage"`
	FundraisingStartDate       string `json:"fundraisingStartDate"`
	FundraisingEndDate         string `json:"fundraisingEndDate"`
	IngredientPurchaseDate     string `json:"ingredientPurchaseDate"`
	CookingDate                string `json:"cookingDate"`
	DeliveryDate               string `json:"deliveryDate"`
	CategoryID                 string `json:"categoryId"`
}

// CampaignUpdate is a partial update. Nil fields are left untouched.
type CampaignUpdate struct {
	Title                      *string `json:"title,omitempty"`
	Description                *string `json:"description,omitempty"`
	Location                   *string `json:"location,omitempty"`
	CoverImageFileKey          *string `json:"coverImageFileKey,omitempty"`
	TargetAmount               *string `json:"targetAmount,omitempty"`
	IngredientBudgetPercentage *string `json:"ingredientBudgetPercentage,omitempty"`
	CookingBudgetPercentage    *string `json:"cookingBudgetPercentage,omitempty"`
	DeliveryBudgetPercentage   *string `json:"deliveryBudgetPercentage,omitempty"`
	FundraisingStartDate       *string `json:"fundraisingStartDate,omitempty"`
	FundraisingEndDate         *string `json:"fundraisingEndDate,omitempty"`
	IngredientPurchaseDate     *string `json:"ingredientPurchaseDate,omitempty"`
	CookingDate                *string `json:"cookingDate,omitempty"`
	DeliveryDate               *string `json:"deliveryDate,omitempty"`
	CategoryID                 *string `json:"categoryId,omitempty"`
}

type Campaign struct {
	ID                         string          `json:"id"`
	Title                      string          `json:"title"`
	Description                string          `json:"description"`
	Location                   string          `json:"location"`
	CoverImageFileKey          string          `json:"coverImageFileKey"`
	TargetAmount               decimal.Decimal `json:"targetAmount"`
	ReceivedAmount             decimal.Decimal `json:"receivedAmount"`
	IngredientBudgetPercentage decimal.Decimal `json:"ingredientBudgetPercentage"`
	CookingBudgetPercentage    decimal.Decimal `json:"cookingBudgetPercentage"`
	DeliveryBudgetPercentage   decimal.Decimal `json:"deliveryBudgetPercentage"`
	FundraisingStartDate       time.Time       `json:"fundraisingStartDate"`
	FundraisingEndDate         time.Time       `json:"fundraisingEndDate"`
	IngredientPurchaseDate     time.Time       `json:"ingredientPurchaseDate"`
	CookingDate                time.Time       `json:"cookingDate"`
	DeliveryDate               time.Time       `json:"deliveryDate"`
	CategoryID                 string          `json:"categoryId"`
	Status                     CampaignStatus  `json:"status"`
	CreatedAt                  time.Time       `json:"createdAt"`
	UpdatedAt                  time.Time       `json:"updatedAt"`
}

// CampaignPatch is the normalized form of a CampaignUpdate.
type CampaignPatch struct {
	Title                      *string          `json:"title,omitempty"`
	Description                *string          `json:"description,omitempty"`
	Location                   *string          `json:"location,omitempty"`
	CoverImageFileKey          *string          `json:"coverImageFileKey,omitempty"`
	TargetAmount               *decimal.Decimal `json:"targetAmount,omitempty"`
	IngredientBudgetPercentage *decimal.Decimal `json:"ingredientBudgetPercentage,omitempty"`
	CookingBudgetPercentage    *decimal.Decimal `json:"cookingBudgetPercentage,omitempty"`
	DeliveryBudgetPercentage   *decimal.Decimal `json:"deliveryBudgetPercentage,omitempty"`
	FundraisingStartDate       *time.Time       `json:"fundraisingStartDate,omitempty"`
	FundraisingEndDate         *time.Time       `json:"fundraisingEndDate,omitempty"`
	IngredientPurchaseDate     *time.Time       `json:"ingredientPurchaseDate,omitempty"`
	CookingDate                *time.Time       `json:"cookingDate,omitempty"`
	DeliveryDate               *time.Time       `json:"deliveryDate,omitempty"`
	CategoryID                 *string          `json:"categoryId,omitempty"`
}

// Apply copies every set field of the patch onto c.
func (p *CampaignPatch) Apply(c *Campaign) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.CoverImageFileKey != nil {
		c.CoverImageFileKey = *p.CoverImageFileKey
	}
	if p.TargetAmount != nil {
		c.TargetAmount = *p.TargetAmount
	}
	if p.IngredientBudgetPercentage != nil {
		c.IngredientBudgetPercentage = *p.IngredientBudgetPercentage
	}
	if p.CookingBudgetPercentage != nil {
		c.CookingBudgetPercentage = *p.CookingBudgetPercentage
	}
	if p.DeliveryBudgetPercentage != nil {
		c.DeliveryBudgetPercentage = *p.DeliveryBudgetPercentage
	}
	if p.FundraisingStartDate != nil {
		c.FundraisingStartDate = *p.FundraisingStartDate
	}
	if p.FundraisingEndDate != nil {
		c.FundraisingEndDate = *p.FundraisingEndDate
	}
	if p.IngredientPurchaseDate != nil {
		c.IngredientPurchaseDate = *p.IngredientPurchaseDate
	}
	if p.CookingDate != nil {
		c.CookingDate = *p.CookingDate
	}
	if p.DeliveryDate != nil {
		c.DeliveryDate = *p.DeliveryDate
	}
	if p.CategoryID != nil {
		c.CategoryID = *p.CategoryID
	}
}

// Draft renders c back into the string form accepted by the create validator.
func (c *Campaign) Draft() CampaignDraft {
	return CampaignDraft{
		Title:                      c.Title,
		Description:                c.Description,
		Location:                   c.Location,
		CoverImageFileKey:          c.CoverImageFileKey,
		TargetAmount:               c.TargetAmount.String(),
		IngredientBudgetPercentage: c.IngredientBudgetPercentage.String(),
		CookingBudgetPercentage:    c.CookingBudgetPercentage.String(),
		DeliveryBudgetPercentage:   c.DeliveryBudgetPercentage.String(),
		FundraisingStartDate:       c.FundraisingStartDate.Format(time.RFC3339Nano),
		FundraisingEndDate:         c.FundraisingEndDate.Format(time.RFC3339Nano),
		IngredientPurchaseDate:     c.IngredientPurchaseDate.Format(time.RFC3339Nano),
		CookingDate:                c.CookingDate.Format(time.RFC3339Nano),
		DeliveryDate:               c.DeliveryDate.Format(time.RFC3339Nano),
		CategoryID:                 c.CategoryID,
	}
}

type CampaignSummary struct {
	PendingCampaignCount int             `json:"pendingCampaignCount"`
	ActiveCampaignCount  int             `json:"activeCampaignCount"`
	TotalTargetAmount    decimal.Decimal `json:"totalTargetAmount"`
}
