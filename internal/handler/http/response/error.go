package response

import (
	"errors"
	"net/http"

	"github.com/athena-hr/pto-backend-go/internal/domain/coverage"
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
	"github.com/athena-hr/pto-backend-go/internal/pkg/validator"
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
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrPolicyNotFound):
		NotFound(w, "Leave policy not found for this role and year")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrBalanceExists):
		Conflict(w, "Leave balance already initialized for this year")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrCategoryNotInLedger):
		BadRequest(w, "Employee is not entitled to this leave category", nil)

	// PTO domain errors
	case errors.Is(err, pto.ErrRequestNotFound):
		NotFound(w, "PTO request not found")
	case errors.Is(err, pto.ErrAlreadyDecided):
		Conflict(w, "PTO request already decided")
	case errors.Is(err, pto.ErrAdmissionContention):
		Conflict(w, "Admission check contended, please retry")

	// Coverage domain errors
	case errors.Is(err, coverage.ErrRuleNotFound):
		NotFound(w, "Coverage rule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
