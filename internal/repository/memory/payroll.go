package memory

import (
	"context"
	"sync"
	"time"

	"github.com/kerjahub/hrm-backend-go/internal/domain/payroll"
)

type PayrollRepository struct {
	mu      sync.RWMutex
	records map[string]payroll.PayrollRecord
}

func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{records: make(map[string]payroll.PayrollRecord)}
}

func (r *PayrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.records[record.ID] = record
	return record, nil
}

func (r *PayrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (r *PayrollRepository) GetByUserID(ctx context.Context, userID string) (payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.UserID == userID {
			return rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (r *PayrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ID]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	record.UserID = existing.UserID
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return record, nil
}
