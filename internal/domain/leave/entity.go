package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID     string
	UserID string

	Type      string
	StartDate time.Time
	EndDate   time.Time
	Remarks   *string

	Status    LeaveRequestStatus
	DecidedBy *string
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
