package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kerjahub/hrm-backend-go/internal/domain/attendance"
	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/identity"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/validator"
)

const (
	defaultCheckInClock  = "09:00 AM"
	defaultCheckOutClock = "06:00 PM"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

type Option func(*attendanceService)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *attendanceService) {
		s.now = now
	}
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, opts ...Option) attendance.AttendanceService {
	s := &attendanceService{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := localMidnight(now)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, ident.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyMarked
	}

	checkIn := clockOnDay(req.CheckIn, defaultCheckInClock, today)

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:      uuid.NewString(),
		UserID:  ident.UserID,
		Date:    today,
		Status:  attendance.StatusPresent,
		CheckIn: checkIn,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. A repeated check-out
// overwrites the earlier value rather than failing.
func (s *attendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	today := localMidnight(s.now())

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, ident.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckIn
	}

	checkOut := clockOnDay(req.CheckOut, defaultCheckOutClock, today)

	updated, err := s.attendanceRepo.SetCheckOut(ctx, existing.ID, checkOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(updated), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *attendanceService) GetMyAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *attendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if _, err := identity.RequireRole(ctx, user.RoleAdmin); err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clockOnDay combines a clock time string with the given day. The clock string
// has already passed validation; an empty string falls back to the default.
func clockOnDay(clock, fallback string, day time.Time) time.Time {
	if validator.IsEmpty(clock) {
		clock = fallback
	}
	parsed, _ := validator.ParseClockTime(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location())
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:        att.ID,
		UserID:    att.UserID,
		Date:      att.Date.Format("2006-01-02"),
		Status:    att.Status,
		CheckIn:   att.CheckIn.Format("03:04 PM"),
		CreatedAt: att.CreatedAt.Format(time.RFC3339),
		UpdatedAt: att.UpdatedAt.Format(time.RFC3339),
	}
	if att.CheckOut != nil {
		checkOut := att.CheckOut.Format("03:04 PM")
		resp.CheckOut = &checkOut
	}
	return resp
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toAttendanceResponse(att))
	}
	return responses
}
