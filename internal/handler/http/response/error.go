package response

import (
	"errors"
	"net/http"

	"github.com/kerjahub/hrm-backend-go/internal/domain/attendance"
	"github.com/kerjahub/hrm-backend-go/internal/domain/leave"
	"github.com/kerjahub/hrm-backend-go/internal/domain/payroll"
	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/identity"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		BadRequest(w, "Attendance already marked for today", nil)
	case errors.Is(err, attendance.ErrNoCheckIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Identity errors
	case errors.Is(err, identity.ErrNoIdentity):
		Unauthorized(w, "Authentication required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
