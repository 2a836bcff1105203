package payroll

import "context"

// PayrollService defines business logic for payroll access
type PayrollService interface {
	// GetMyPayroll retrieves the authenticated user's payroll record
	GetMyPayroll(ctx context.Context) (PayrollResponse, error)

	// UpdateRecord overwrites the supplied fields on the target record and
	// recomputes the net salary (admin surface)
	UpdateRecord(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)
}
