// Package memory provides in-memory repository implementations used as
// substitutes for the PostgreSQL repositories in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kerjahub/hrm-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance // keyed by record ID
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func dayKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

// Create enforces the same UNIQUE (user_id, date) constraint the database does.
func (r *AttendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(att.UserID, att.Date)
	for _, existing := range r.records {
		if dayKey(existing.UserID, existing.Date) == key {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
	}

	now := time.Now()
	att.CreatedAt = now
	att.UpdatedAt = now
	r.records[att.ID] = att
	return att, nil
}

func (r *AttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := dayKey(userID, date)
	for _, att := range r.records {
		if dayKey(att.UserID, att.Date) == key {
			found := att
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	att.CheckOut = &checkOut
	att.UpdatedAt = time.Now()
	r.records[id] = att
	return att, nil
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, att := range r.records {
		if att.UserID == userID {
			result = append(result, att)
		}
	}
	sortByDateDesc(result)
	return result, nil
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, att := range r.records {
		if filter.UserID != nil && *filter.UserID != "" && att.UserID != *filter.UserID {
			continue
		}
		day := att.Date.Format("2006-01-02")
		if filter.Date != nil && *filter.Date != "" && day != *filter.Date {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" && day < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && day > *filter.EndDate {
			continue
		}
		result = append(result, att)
	}
	sortByDateDesc(result)
	return result, nil
}

func sortByDateDesc(records []attendance.Attendance) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
