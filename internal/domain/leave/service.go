package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// CreateRequest files a new leave request with status Pending
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// GetMyRequests retrieves the authenticated user's requests, newest first
	GetMyRequests(ctx context.Context) ([]LeaveResponse, error)

	// DecideRequest approves or rejects a leave request (admin surface)
	DecideRequest(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
}
