package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kerjahub/hrm-backend-go/internal/domain/leave"
	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/identity"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/validator"
)

type leaveService struct {
	leaveRepo leave.LeaveRequestRepository
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &leaveService{leaveRepo: leaveRepo}
}

// CreateRequest implements leave.LeaveService.
func (s *leaveService) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	request := leave.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    ident.UserID,
		Type:      req.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    leave.LeaveRequestStatusPending,
	}
	if !validator.IsEmpty(req.Remarks) {
		request.Remarks = &req.Remarks
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(created), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *leaveService) GetMyRequests(ctx context.Context) ([]leave.LeaveResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toLeaveResponse(req))
	}
	return responses, nil
}

// DecideRequest implements leave.LeaveService. The deciding admin is recorded
// on the request.
func (s *leaveService) DecideRequest(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	ident, err := identity.RequireRole(ctx, user.RoleAdmin)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	err = s.leaveRepo.UpdateStatus(ctx, req.ID, leave.LeaveRequestStatus(req.Status), ident.UserID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(decided), nil
}

func toLeaveResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:        req.ID,
		UserID:    req.UserID,
		Type:      req.Type,
		StartDate: req.StartDate.Format("2006-01-02"),
		EndDate:   req.EndDate.Format("2006-01-02"),
		Remarks:   req.Remarks,
		Status:    string(req.Status),
		DecidedBy: req.DecidedBy,
		CreatedAt: req.CreatedAt.Format(time.RFC3339),
		UpdatedAt: req.UpdatedAt.Format(time.RFC3339),
	}
}
