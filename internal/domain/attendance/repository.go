package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record. The store enforces the
	// one-record-per-(user, date) invariant; a uniqueness violation is
	// returned as ErrAlreadyMarked.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a specific user on a specific
	// calendar day. Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// SetCheckOut sets the check-out time on an existing record. Calling it
	// again overwrites the previous check-out time.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (Attendance, error)

	// ListByUser retrieves all records for a user ordered by date descending.
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// List retrieves records across all users with optional filters, ordered
	// by date descending.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
