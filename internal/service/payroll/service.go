package payroll

import (
	"context"
	"time"

	"github.com/kerjahub/hrm-backend-go/internal/domain/payroll"
	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/identity"
)

type payrollService struct {
	payrollRepo payroll.PayrollRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &payrollService{payrollRepo: payrollRepo}
}

// GetMyPayroll implements payroll.PayrollService.
func (s *payrollService) GetMyPayroll(ctx context.Context) (payroll.PayrollResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByUserID(ctx, ident.UserID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(record), nil
}

// UpdateRecord implements payroll.PayrollService. Nil fields on the request
// keep their stored values; the net salary is always recomputed.
func (s *payrollService) UpdateRecord(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if _, err := identity.RequireRole(ctx, user.RoleAdmin); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if req.BaseSalary != nil {
		record.BaseSalary = *req.BaseSalary
	}
	if req.Allowances != nil {
		record.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	if req.Currency != nil {
		record.Currency = *req.Currency
	}
	if req.Period != nil {
		record.Period = *req.Period
	}
	record.NetSalary = record.ComputeNet()

	updated, err := s.payrollRepo.Update(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(updated), nil
}

func toPayrollResponse(record payroll.PayrollRecord) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:         record.ID,
		UserID:     record.UserID,
		BaseSalary: record.BaseSalary,
		Allowances: record.Allowances,
		Deductions: record.Deductions,
		NetSalary:  record.NetSalary,
		Currency:   record.Currency,
		Period:     record.Period,
		CreatedAt:  record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  record.UpdatedAt.Format(time.RFC3339),
	}
}
