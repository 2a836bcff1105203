package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyMarked      = errors.New("attendance already marked for today")
	ErrNoCheckIn          = errors.New("no check-in found for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
