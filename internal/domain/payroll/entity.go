package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord - one compensation record per user, created out of band,
// mutated only by an admin, read by the owning employee.
type PayrollRecord struct {
	ID         string
	UserID     string
	BaseSalary decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	NetSalary  decimal.Decimal
	Currency   string
	Period     string // e.g. "2026-08"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ComputeNet returns base + allowances - deductions
func (p *PayrollRecord) ComputeNet() decimal.Decimal {
	return p.BaseSalary.Add(p.Allowances).Sub(p.Deductions)
}
