package leave

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/hrm-backend-go/internal/domain/leave"
	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/identity"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/validator"
	"github.com/kerjahub/hrm-backend-go/internal/repository/memory"
)

func authCtx(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   userID + "@example.com",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreateRequest_StartsPending(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	resp, err := svc.CreateRequest(ctx, leave.CreateLeaveRequest{
		Type:      "Annual",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Remarks:   "family trip",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "Annual", resp.Type)
	assert.Equal(t, "2026-09-01", resp.StartDate)
	assert.Equal(t, "2026-09-05", resp.EndDate)
	assert.Equal(t, string(leave.LeaveRequestStatusPending), resp.Status)
	require.NotNil(t, resp.Remarks)
	assert.Equal(t, "family trip", *resp.Remarks)
	assert.Nil(t, resp.DecidedBy)
}

func TestCreateRequest_MissingFields(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.CreateRequest(ctx, leave.CreateLeaveRequest{Type: "Sick"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	errMap := verrs.ToMap()
	assert.Contains(t, errMap, "start_date")
	assert.Contains(t, errMap, "end_date")
}

func TestCreateRequest_Unauthenticated(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		Type:      "Annual",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
	})
	assert.ErrorIs(t, err, identity.ErrNoIdentity)
}

func TestGetMyRequests_NewestFirstOwnOnly(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	otherCtx := authCtx(t, "user-2", user.RoleEmployee)

	first, err := svc.CreateRequest(ctx, leave.CreateLeaveRequest{
		Type: "Annual", StartDate: "2026-09-01", EndDate: "2026-09-02",
	})
	require.NoError(t, err)
	_, err = svc.CreateRequest(otherCtx, leave.CreateLeaveRequest{
		Type: "Sick", StartDate: "2026-09-01", EndDate: "2026-09-01",
	})
	require.NoError(t, err)
	second, err := svc.CreateRequest(ctx, leave.CreateLeaveRequest{
		Type: "Sick", StartDate: "2026-09-10", EndDate: "2026-09-11",
	})
	require.NoError(t, err)

	requests, err := svc.GetMyRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, second.ID, requests[0].ID)
	assert.Equal(t, first.ID, requests[1].ID)
}

func TestDecideRequest_Approve(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	adminCtx := authCtx(t, "admin-1", user.RoleAdmin)

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequest{
		Type: "Annual", StartDate: "2026-09-01", EndDate: "2026-09-05",
	})
	require.NoError(t, err)

	decided, err := svc.DecideRequest(adminCtx, leave.DecideLeaveRequest{
		ID:     created.ID,
		Status: string(leave.LeaveRequestStatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusApproved), decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "admin-1", *decided.DecidedBy)
}

func TestDecideRequest_InvalidStatus(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	adminCtx := authCtx(t, "admin-1", user.RoleAdmin)
	_, err := svc.DecideRequest(adminCtx, leave.DecideLeaveRequest{
		ID:     "some-id",
		Status: "Maybe",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}

func TestDecideRequest_NotFound(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	adminCtx := authCtx(t, "admin-1", user.RoleAdmin)
	_, err := svc.DecideRequest(adminCtx, leave.DecideLeaveRequest{
		ID:     "missing",
		Status: string(leave.LeaveRequestStatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecideRequest_RequiresAdmin(t *testing.T) {
	repo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.DecideRequest(ctx, leave.DecideLeaveRequest{
		ID:     "some-id",
		Status: string(leave.LeaveRequestStatusApproved),
	})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}
