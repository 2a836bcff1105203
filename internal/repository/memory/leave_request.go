package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kerjahub/hrm-backend-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]leave.LeaveRequest
	seq      int // preserves insertion order for created_at ties
	order    map[string]int
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{
		requests: make(map[string]leave.LeaveRequest),
		order:    make(map[string]int),
	}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = request
	r.seq++
	r.order[request.ID] = r.seq
	return request, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *LeaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			result = append(result, req)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return r.order[result[i].ID] > r.order[result[j].ID]
	})
	return result, nil
}

func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, decidedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	now := time.Now()
	req.Status = status
	req.DecidedBy = &decidedBy
	req.DecidedAt = &now
	req.UpdatedAt = now
	r.requests[id] = req
	return nil
}
