package validation

import "fmt"

// Field keys as used by the campaign form.
const (
	FieldTitle                      = "title"
	FieldDescription                = "description"
	FieldLocation                   = "location"
	FieldCoverImageFileKey          = "coverImageFileKey"
	FieldTargetAmount               = "targetAmount"
	FieldIngredientBudgetPercentage = "ingredientBudgetPercentage"
	FieldCookingBudgetPercentage    = "cookingBudgetPercentage"
	FieldDeliveryBudgetPercentage   = "deliveryBudgetPercentage"
	FieldFundraisingStartDate       = "fundraisingStartDate"
	FieldFundraisingEndDate         = "fundraisingEndDate"
	FieldIngredientPurchaseDate     = "ingredientPurchaseDate"
	FieldCookingDate                = "cookingDate"
	FieldDeliveryDate               = "deliveryDate"
	FieldCategoryID                 = "categoryId"
)

const (
	MessageBudgetSum         = "Tổng phần trăm ngân sách (nguyên liệu, nấu ăn, giao hàng) phải bằng 100%"
	MessageFundraisingWindow = "Ngày kết thúc gây quỹ phải bằng hoặc sau ngày bắt đầu gây quỹ"
	MessageMilestoneOrder    = "Các mốc thời gian phải theo thứ tự: kết thúc gây quỹ ≤ mua nguyên liệu ≤ nấu ăn ≤ giao hàng"
)

type fieldRule struct {
	key   string
	label string
	tag   string
}

var (
	ruleTitle              = fieldRule{FieldTitle, "Tiêu đề", "required,min=10,max=200"}
	ruleDescription        = fieldRule{FieldDescription, "Mô tả", "required,min=50,max=2000"}
	ruleLocation           = fieldRule{FieldLocation, "Địa điểm", "required,min=5,max=200"}
	ruleCoverImageFileKey  = fieldRule{FieldCoverImageFileKey, "Ảnh bìa", "required"}
	ruleTargetAmount       = fieldRule{FieldTargetAmount, "Số tiền mục tiêu", "required,decimal2,positive"}
	ruleIngredientBudget   = fieldRule{FieldIngredientBudgetPercentage, "Phần trăm ngân sách nguyên liệu", "required,decimal2,percent"}
	ruleCookingBudget      = fieldRule{FieldCookingBudgetPercentage, "Phần trăm ngân sách nấu ăn", "required,decimal2,percent"}
	ruleDeliveryBudget     = fieldRule{FieldDeliveryBudgetPercentage, "Phần trăm ngân sách giao hàng", "required,decimal2,percent"}
	ruleFundraisingStart   = fieldRule{FieldFundraisingStartDate, "Ngày bắt đầu gây quỹ", "required,isodate"}
	ruleFundraisingEnd     = fieldRule{FieldFundraisingEndDate, "Ngày kết thúc gây quỹ", "required,isodate"}
	ruleIngredientPurchase = fieldRule{FieldIngredientPurchaseDate, "Ngày mua nguyên liệu", "required,isodate"}
	ruleCookingDate        = fieldRule{FieldCookingDate, "Ngày nấu ăn", "required,isodate"}
	ruleDeliveryDate       = fieldRule{FieldDeliveryDate, "Ngày giao hàng", "required,isodate"}
	ruleCategoryID         = fieldRule{FieldCategoryID, "Danh mục", "required,uuidtext"}
)

// message renders the text for the first tag of r that failed.
func (r fieldRule) message(tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s là bắt buộc", r.label)
	case "min":
		return fmt.Sprintf("%s phải có ít nhất %s ký tự", r.label, param)
	case "max":
		return fmt.Sprintf("%s không được vượt quá %s ký tự", r.label, param)
	case "decimal2":
		return fmt.Sprintf("%s phải là số hợp lệ, tối đa 2 chữ số thập phân", r.label)
	case "positive":
		return fmt.Sprintf("%s phải lớn hơn 0", r.label)
	case "percent":
		return fmt.Sprintf("%s phải nằm trong khoảng từ 0 đến 100", r.label)
	case "isodate":
		return fmt.Sprintf("%s không phải là ngày hợp lệ", r.label)
	case "uuidtext":
		return fmt.Sprintf("%s không hợp lệ", r.label)
	default:
		return fmt.Sprintf("%s không hợp lệ", r.label)
	}
}
