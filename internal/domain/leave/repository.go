package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// ListByUser retrieves a user's requests ordered by creation time descending
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	// UpdateStatus sets the status on the target record unconditionally
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, decidedBy string) error
}
