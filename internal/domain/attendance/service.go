package attendance

import (
	"context"
)

// AttendanceService defines business logic for the daily attendance lifecycle
type AttendanceService interface {
	// CheckIn creates today's attendance record for the authenticated user.
	// Fails with ErrAlreadyMarked when a record for today already exists.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut sets the check-out time on today's record.
	// Fails with ErrNoCheckIn when the user has not checked in today.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves the authenticated user's records, newest first
	GetMyAttendance(ctx context.Context) ([]AttendanceResponse, error)

	// ListAttendance retrieves records across all users (admin surface)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
