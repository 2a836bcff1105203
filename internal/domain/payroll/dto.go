package payroll

import (
	"github.com/kerjahub/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PAYROLL DTOs
// ========================================

// UpdatePayrollRequest carries a partial update; nil fields are left untouched.
type UpdatePayrollRequest struct {
	ID         string           `json:"-"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Allowances *decimal.Decimal `json:"allowances"`
	Deductions *decimal.Decimal `json:"deductions"`
	Currency   *string          `json:"currency"`
	Period     *string          `json:"period"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}
	if r.Allowances != nil && r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`
	Currency   string          `json:"currency"`
	Period     string          `json:"period"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
