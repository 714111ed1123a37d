package budget

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/studyease/backend/core"
)

// Income types taken into account by the summary. Other labels are kept as-is but never summed.
const (
	IncomeTypeExpense = "expense"
	IncomeTypeSaving  = "saving"
)

var errAmountRequired = errors.New("this field is required")

// Entry is a budget record. Amount holds the value as it was stored: a number or a decimal string.
type Entry struct {
	ID          string      `json:"_id"`
	User        string      `json:"user"`
	Amount      interface{} `json:"amount"`
	IncomeType  string      `json:"incomeType"`
	Category    string      `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
	Date        string      `json:"date,omitempty"`
}

// NewEntry contains information needed to record a budget entry.
type NewEntry struct {
	User        string      `json:"user" validate:"required,email"`
	Amount      interface{} `json:"amount"`
	IncomeType  string      `json:"incomeType" validate:"required"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.User = core.CleanString(ne.User)
	ne.IncomeType = core.CleanString(ne.IncomeType)
	if err := validate.Struct(ne); err != nil {
		return err
	}
	if ne.Amount == nil {
		return core.NewValidationError(errAmountRequired, core.FieldError{Field: "amount", Error: errAmountRequired.Error()})
	}
	return nil
}

// Summary is the budget view of a user.
// Retrieved counts every entry read from the store, Skipped those whose amount could not be coerced.
type Summary struct {
	TotalExpense float64 `json:"totalExpense"`
	TotalSaving  float64 `json:"totalSaving"`
	Retrieved    int     `json:"retrieved"`
	Skipped      int     `json:"skipped"`
}
