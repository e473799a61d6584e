package pto

import "errors"

var (
	ErrRequestNotFound     = errors.New("pto request not found")
	ErrAlreadyDecided      = errors.New("pto request already decided")
	ErrAdmissionContention = errors.New("admission check contended, try again")
)
