package leave

import "errors"

var (
	ErrPolicyNotFound      = errors.New("leave policy not found")
	ErrBalanceNotFound     = errors.New("leave balance not found")
	ErrBalanceExists       = errors.New("leave balance already initialized")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrCategoryNotInLedger = errors.New("category not present in ledger")
)
