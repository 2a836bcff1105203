package attendance

import (
	"time"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance is one record per (user, calendar day). Created on check-in,
// mutated only to set CheckOut, never deleted.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time // day granularity, time-of-day truncated to local midnight
	Status    string
	CheckIn   time.Time
	CheckOut  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
