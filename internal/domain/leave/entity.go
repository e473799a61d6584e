package leave

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
)

// Category is the fixed enumeration of leave categories.
type Category string

const (
	CategoryPersonal    Category = "personal"
	CategorySick        Category = "sick"
	CategoryBereavement Category = "bereavement"
	CategoryMaternity   Category = "maternity"
	CategoryPaternity   Category = "paternity"
)

var Categories = []Category{
	CategoryPersonal,
	CategorySick,
	CategoryBereavement,
	CategoryMaternity,
	CategoryPaternity,
}

func IsValidCategory(c string) bool {
	for _, cat := range Categories {
		if string(cat) == c {
			return true
		}
	}
	return false
}

// CategoryAllocations maps category -> allocated days for a policy year.
// Stored as JSONB.
type CategoryAllocations map[Category]int

// Value implements driver.Valuer for database storage
func (a CategoryAllocations) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *CategoryAllocations) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CategoryAllocations: invalid type")
	}

	return json.Unmarshal(bytes, a)
}

// LeavePolicy entity. At most one active policy exists per (role, year);
// writes for an existing key replace the prior record.
type LeavePolicy struct {
	ID         string
	Role       employee.Role
	Year       int
	Categories CategoryAllocations

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryBalance is one ledger sub-record. Remaining must equal
// Allocated - Used after every mutation.
type CategoryBalance struct {
	Allocated int `json:"allocated"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// BalanceSet maps category -> CategoryBalance. Ineligible categories are
// absent, never zeroed. Stored as JSONB.
type BalanceSet map[Category]CategoryBalance

// Value implements driver.Valuer for database storage
func (b BalanceSet) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for database retrieval
func (b *BalanceSet) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan BalanceSet: invalid type")
	}

	return json.Unmarshal(bytes, b)
}

// LeaveBalance entity, the per-employee, per-year ledger. At most one
// entry exists per (employee, year).
type LeaveBalance struct {
	ID         string
	EmployeeID string
	Year       int
	Balances   BalanceSet

	CreatedAt time.Time
	UpdatedAt time.Time
}
