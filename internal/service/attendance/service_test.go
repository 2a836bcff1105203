package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/hrm-backend-go/internal/domain/attendance"
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

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCheckIn_UsesDefaultTime(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(fixedClock(now)))

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "2026-08-28", resp.Date)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "09:00 AM", resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
}

func TestCheckIn_UsesProvidedTime(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 28, 8, 45, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(fixedClock(now)))

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{CheckIn: "08:30 AM"})

	require.NoError(t, err)
	assert.Equal(t, "08:30 AM", resp.CheckIn)
}

func TestCheckIn_AlreadyMarked(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(fixedClock(now)))

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
}

func TestCheckIn_NextDayAllowed(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(func() time.Time { return now }))

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	now = now.AddDate(0, 0, 1)
	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", resp.Date)
}

func TestCheckIn_InvalidClockTime(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	svc := NewAttendanceService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{CheckIn: "not-a-time"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "check_in")
}

func TestCheckIn_Unauthenticated(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	svc := NewAttendanceService(repo)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{})
	assert.ErrorIs(t, err, identity.ErrNoIdentity)
}

func TestCheckOut_UsesDefaultTime(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 28, 17, 0, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(fixedClock(now)))

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "06:00 PM", *resp.CheckOut)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	svc := NewAttendanceService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoCheckIn)
}

func TestCheckOut_RepeatedOverwrites(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 28, 17, 0, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(fixedClock(now)))

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	first, err := svc.CheckOut(ctx, attendance.CheckOutRequest{CheckOut: "05:00 PM"})
	require.NoError(t, err)
	require.NotNil(t, first.CheckOut)
	assert.Equal(t, "05:00 PM", *first.CheckOut)

	second, err := svc.CheckOut(ctx, attendance.CheckOutRequest{CheckOut: "07:15 PM"})
	require.NoError(t, err)
	require.NotNil(t, second.CheckOut)
	assert.Equal(t, "07:15 PM", *second.CheckOut)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetMyAttendance_NewestFirstOwnOnly(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(func() time.Time { return now }))

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	otherCtx := authCtx(t, "user-2", user.RoleEmployee)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	_, err = svc.CheckIn(otherCtx, attendance.CheckInRequest{})
	require.NoError(t, err)

	now = now.AddDate(0, 0, 1)
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	records, err := svc.GetMyAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-08-28", records[0].Date)
	assert.Equal(t, "2026-08-27", records[1].Date)
	for _, rec := range records {
		assert.Equal(t, "user-1", rec.UserID)
	}
}

func TestListAttendance_RequiresAdmin(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	svc := NewAttendanceService(repo)

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	_, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestListAttendance_Filters(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.Local)
	svc := NewAttendanceService(repo, WithClock(func() time.Time { return now }))

	userCtx := authCtx(t, "user-1", user.RoleEmployee)
	otherCtx := authCtx(t, "user-2", user.RoleEmployee)
	adminCtx := authCtx(t, "admin-1", user.RoleAdmin)

	_, err := svc.CheckIn(userCtx, attendance.CheckInRequest{})
	require.NoError(t, err)
	_, err = svc.CheckIn(otherCtx, attendance.CheckInRequest{})
	require.NoError(t, err)

	now = now.AddDate(0, 0, 1)
	_, err = svc.CheckIn(userCtx, attendance.CheckInRequest{})
	require.NoError(t, err)

	all, err := svc.ListAttendance(adminCtx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	userID := "user-1"
	byUser, err := svc.ListAttendance(adminCtx, attendance.AttendanceFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	date := "2026-08-27"
	byDate, err := svc.ListAttendance(adminCtx, attendance.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	start := "2026-08-28"
	byRange, err := svc.ListAttendance(adminCtx, attendance.AttendanceFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, byRange, 1)
	assert.Equal(t, "2026-08-28", byRange[0].Date)
}

func TestListAttendance_InvalidFilterDate(t *testing.T) {
	repo := memory.NewAttendanceRepository()
	svc := NewAttendanceService(repo)

	adminCtx := authCtx(t, "admin-1", user.RoleAdmin)
	bad := "28-08-2026"
	_, err := svc.ListAttendance(adminCtx, attendance.AttendanceFilter{Date: &bad})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}
