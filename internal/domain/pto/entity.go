package pto

import (
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusDenied:
		return true
	}
	return false
}

// Terminal reports whether a status permits no further transition.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// PTORequest entity. Role and Team are value copies of the employee's
// directory record taken at creation time, so coverage math over
// historical requests stays consistent across later transfers.
type PTORequest struct {
	ID         string
	EmployeeID string
	Role       employee.Role
	Team       string

	StartDate time.Time
	EndDate   time.Time
	LeaveType leave.Category
	Reason    string

	Status        Status
	DaysRequested int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName  *string
	EmployeeEmail *string
}

// CountingStatuses are the statuses that occupy coverage: a denied
// request never counts against a team's allowed-off ceiling.
var CountingStatuses = []Status{StatusApproved, StatusPending}

// Overlaps reports whether the request's inclusive interval intersects
// [from, to]. Two closed intervals intersect iff a1 <= b2 && a2 >= b1,
// so a request ending exactly on the window's start date still counts.
func (r PTORequest) Overlaps(from, to time.Time) bool {
	return !r.StartDate.After(to) && !r.EndDate.Before(from)
}

// InclusiveDays returns the calendar day count of [start, end], both
// boundaries included.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
