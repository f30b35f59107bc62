// Package validation checks campaign create and update payloads before they
// are handed to the campaign store. Every rule runs on every call, so a single
// rejection lists all the problems with a submission.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"foodfund/internal/models"
)

// DefaultBudgetTolerance is how far the three budget percentages may sum away
// from 100 and still be accepted.
var DefaultBudgetTolerance = decimal.NewFromFloat(0.01)

var (
	hundred        = decimal.NewFromInt(100)
	decimalPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	// 8-4-4-4-12 hex in either case; braced and urn: forms are not accepted.
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// CampaignValidator validates campaign drafts and partial updates. It holds no
// per-call state and is safe for concurrent use.
type CampaignValidator struct {
	validate        *validator.Validate
	budgetTolerance decimal.Decimal
}

type Option func(*CampaignValidator)

// WithBudgetTolerance overrides the allowed distance between the budget sum
// and 100. Non-positive values are ignored.
func WithBudgetTolerance(tol decimal.Decimal) Option {
	return func(v *CampaignValidator) {
		if tol.IsPositive() {
			v.budgetTolerance = tol
		}
	}
}

func NewCampaignValidator(opts ...Option) (*CampaignValidator, error) {
	v := &CampaignValidator{
		validate:        validator.New(),
		budgetTolerance: DefaultBudgetTolerance,
	}
	for _, opt := range opts {
		opt(v)
	}

	custom := map[string]validator.Func{
		"decimal2": isDecimal2,
		"positive": isPositive,
		"percent":  isPercent,
		"isodate":  isISODate,
		"uuidtext": isUUIDText,
	}
	for tag, fn := range custom {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return v, nil
}

func (v *CampaignValidator) BudgetTolerance() decimal.Decimal {
	return v.budgetTolerance
}

// ValidateCreate checks a complete draft. Cross-field rules only run once the
// fields they compare have passed their own checks.
func (v *CampaignValidator) ValidateCreate(d models.CampaignDraft) Result[models.Campaign] {
	errs := FieldErrors{}
	c := &models.Campaign{
		Title:             d.Title,
		Description:       d.Description,
		Location:          d.Location,
		CoverImageFileKey: d.CoverImageFileKey,
		CategoryID:        d.CategoryID,
	}

	v.check(errs, ruleTitle, d.Title)
	v.check(errs, ruleDescription, d.Description)
	v.check(errs, ruleLocation, d.Location)
	v.check(errs, ruleCoverImageFileKey, d.CoverImageFileKey)
	v.check(errs, ruleCategoryID, d.CategoryID)

	var okIngredient, okCooking, okDelivery bool
	c.TargetAmount, _ = v.number(errs, ruleTargetAmount, d.TargetAmount)
	c.IngredientBudgetPercentage, okIngredient = v.number(errs, ruleIngredientBudget, d.IngredientBudgetPercentage)
	c.CookingBudgetPercentage, okCooking = v.number(errs, ruleCookingBudget, d.CookingBudgetPercentage)
	c.DeliveryBudgetPercentage, okDelivery = v.number(errs, ruleDeliveryBudget, d.DeliveryBudgetPercentage)

	var okStart, okEnd, okPurchase, okCookingDate, okDeliveryDate bool
	c.FundraisingStartDate, okStart = v.date(errs, ruleFundraisingStart, d.FundraisingStartDate)
	c.FundraisingEndDate, okEnd = v.date(errs, ruleFundraisingEnd, d.FundraisingEndDate)
	c.IngredientPurchaseDate, okPurchase = v.date(errs, ruleIngredientPurchase, d.IngredientPurchaseDate)
	c.CookingDate, okCookingDate = v.date(errs, ruleCookingDate, d.CookingDate)
	c.DeliveryDate, okDeliveryDate = v.date(errs, ruleDeliveryDate, d.DeliveryDate)

	if okIngredient && okCooking && okDelivery {
		v.checkBudgetSum(errs, c.IngredientBudgetPercentage, c.CookingBudgetPercentage, c.DeliveryBudgetPercentage)
	}
	if okStart && okEnd {
		checkFundraisingWindow(errs, c.FundraisingStartDate, c.FundraisingEndDate)
	}
	if okEnd && okPurchase && okCookingDate && okDeliveryDate {
		checkMilestones(errs, c.FundraisingEndDate, c.IngredientPurchaseDate, c.CookingDate, c.DeliveryDate)
	}

	if len(errs) > 0 {
		return Result[models.Campaign]{Errors: errs}
	}
	return Result[models.Campaign]{Value: c}
}

// ValidateUpdate checks only the fields present in u. A cross-field rule is
// evaluated when every field it compares is present and valid; otherwise the
// caller has to re-check it against the stored campaign.
func (v *CampaignValidator) ValidateUpdate(u models.CampaignUpdate) Result[models.CampaignPatch] {
	errs := FieldErrors{}
	p := &models.CampaignPatch{}

	p.Title = v.optionalText(errs, ruleTitle, u.Title)
	p.Description = v.optionalText(errs, ruleDescription, u.Description)
	p.Location = v.optionalText(errs, ruleLocation, u.Location)
	p.CoverImageFileKey = v.optionalText(errs, ruleCoverImageFileKey, u.CoverImageFileKey)
	p.CategoryID = v.optionalText(errs, ruleCategoryID, u.CategoryID)

	p.TargetAmount = v.optionalNumber(errs, ruleTargetAmount, u.TargetAmount)
	p.IngredientBudgetPercentage = v.optionalNumber(errs, ruleIngredientBudget, u.IngredientBudgetPercentage)
	p.CookingBudgetPercentage = v.optionalNumber(errs, ruleCookingBudget, u.CookingBudgetPercentage)
	p.DeliveryBudgetPercentage = v.optionalNumber(errs, ruleDeliveryBudget, u.DeliveryBudgetPercentage)

	p.FundraisingStartDate = v.optionalDate(errs, ruleFundraisingStart, u.FundraisingStartDate)
	p.FundraisingEndDate = v.optionalDate(errs, ruleFundraisingEnd, u.FundraisingEndDate)
	p.IngredientPurchaseDate = v.optionalDate(errs, ruleIngredientPurchase, u.IngredientPurchaseDate)
	p.CookingDate = v.optionalDate(errs, ruleCookingDate, u.CookingDate)
	p.DeliveryDate = v.optionalDate(errs, ruleDeliveryDate, u.DeliveryDate)

	if p.IngredientBudgetPercentage != nil && p.CookingBudgetPercentage != nil && p.DeliveryBudgetPercentage != nil {
		v.checkBudgetSum(errs, *p.IngredientBudgetPercentage, *p.CookingBudgetPercentage, *p.DeliveryBudgetPercentage)
	}
	if p.FundraisingStartDate != nil && p.FundraisingEndDate != nil {
		checkFundraisingWindow(errs, *p.FundraisingStartDate, *p.FundraisingEndDate)
	}
	if p.FundraisingEndDate != nil && p.IngredientPurchaseDate != nil && p.CookingDate != nil && p.DeliveryDate != nil {
		checkMilestones(errs, *p.FundraisingEndDate, *p.IngredientPurchaseDate, *p.CookingDate, *p.DeliveryDate)
	}

	if len(errs) > 0 {
		return Result[models.CampaignPatch]{Errors: errs}
	}
	return Result[models.CampaignPatch]{Value: p}
}

// CheckInvariants re-runs the cross-field rules on a fully merged campaign,
// e.g. after a patch has been applied to the stored record.
func (v *CampaignValidator) CheckInvariants(c *models.Campaign) FieldErrors {
	errs := FieldErrors{}
	v.checkBudgetSum(errs, c.IngredientBudgetPercentage, c.CookingBudgetPercentage, c.DeliveryBudgetPercentage)
	checkFundraisingWindow(errs, c.FundraisingStartDate, c.FundraisingEndDate)
	checkMilestones(errs, c.FundraisingEndDate, c.IngredientPurchaseDate, c.CookingDate, c.DeliveryDate)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *CampaignValidator) check(errs FieldErrors, r fieldRule, value string) bool {
	err := v.validate.Var(value, r.tag)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		errs[r.key] = r.message(fieldErrs[0].Tag(), fieldErrs[0].Param())
	} else {
		errs[r.key] = r.message("", "")
	}
	return false
}

func (v *CampaignValidator) number(errs FieldErrors, r fieldRule, value string) (decimal.Decimal, bool) {
	if !v.check(errs, r, value) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		errs[r.key] = r.message("decimal2", "")
		return decimal.Zero, false
	}
	return d, true
}

func (v *CampaignValidator) date(errs FieldErrors, r fieldRule, value string) (time.Time, bool) {
	if !v.check(errs, r, value) {
		return time.Time{}, false
	}
	t, ok := parseDate(value)
	if !ok {
		errs[r.key] = r.message("isodate", "")
		return time.Time{}, false
	}
	return t, true
}

func (v *CampaignValidator) optionalText(errs FieldErrors, r fieldRule, value *string) *string {
	if value == nil || !v.check(errs, r, *value) {
		return nil
	}
	s := *value
	return &s
}

func (v *CampaignValidator) optionalNumber(errs FieldErrors, r fieldRule, value *string) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d, ok := v.number(errs, r, *value)
	if !ok {
		return nil
	}
	return &d
}

func (v *CampaignValidator) optionalDate(errs FieldErrors, r fieldRule, value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := v.date(errs, r, *value)
	if !ok {
		return nil
	}
	return &t
}

func (v *CampaignValidator) checkBudgetSum(errs FieldErrors, ingredient, cooking, delivery decimal.Decimal) {
	sum := ingredient.Add(cooking).Add(delivery)
	if sum.Sub(hundred).Abs().LessThan(v.budgetTolerance) {
		return
	}
	errs[FieldIngredientBudgetPercentage] = MessageBudgetSum
}

func checkFundraisingWindow(errs FieldErrors, start, end time.Time) {
	if end.Before(start) {
		errs[FieldFundraisingEndDate] = MessageFundraisingWindow
	}
}

func checkMilestones(errs FieldErrors, fundraisingEnd, purchase, cooking, delivery time.Time) {
	if purchase.Before(fundraisingEnd) || cooking.Before(purchase) || delivery.Before(cooking) {
		errs[FieldDeliveryDate] = MessageMilestoneOrder
	}
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func isDecimal2(fl validator.FieldLevel) bool {
	return decimalPattern.MatchString(fl.Field().String())
}

func isPositive(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

func isPercent(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative() && d.LessThanOrEqual(hundred)
}

func isISODate(fl validator.FieldLevel) bool {
	_, ok := parseDate(fl.Field().String())
	return ok
}

func isUUIDText(fl validator.FieldLevel) bool {
	return uuidPattern.MatchString(fl.Field().String())
}
