package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/hrm-backend-go/internal/domain/payroll"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, user_id, base_salary, allowances, deductions, net_salary, currency, period
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.BaseSalary,
		record.Allowances,
		record.Deductions,
		record.NetSalary,
		record.Currency,
		record.Period,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, base_salary, allowances, deductions, net_salary,
			   currency, period, created_at, updated_at
		FROM payroll_records
		WHERE id = $1
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.BaseSalary, &rec.Allowances, &rec.Deductions,
		&rec.NetSalary, &rec.Currency, &rec.Period, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by ID: %w", err)
	}

	return rec, nil
}

// GetByUserID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByUserID(ctx context.Context, userID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, base_salary, allowances, deductions, net_salary,
			   currency, period, created_at, updated_at
		FROM payroll_records
		WHERE user_id = $1
		LIMIT 1
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, userID).Scan(
		&rec.ID, &rec.UserID, &rec.BaseSalary, &rec.Allowances, &rec.Deductions,
		&rec.NetSalary, &rec.Currency, &rec.Period, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by user: %w", err)
	}

	return rec, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET base_salary = $1, allowances = $2, deductions = $3, net_salary = $4,
			currency = $5, period = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, user_id, base_salary, allowances, deductions, net_salary,
			currency, period, created_at, updated_at
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.BaseSalary, record.Allowances, record.Deductions, record.NetSalary,
		record.Currency, record.Period, record.ID,
	).Scan(
		&rec.ID, &rec.UserID, &rec.BaseSalary, &rec.Allowances, &rec.Deductions,
		&rec.NetSalary, &rec.Currency, &rec.Period, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return rec, nil
}
