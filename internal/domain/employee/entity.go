package employee

import "time"

// Role is the fixed set of job roles coverage rules are keyed by.
type Role string

const (
	RoleEngineer Role = "engineer"
	RoleDesigner Role = "designer"
	RoleManager  Role = "manager"
	RoleQA       Role = "qa"
	RoleSupport  Role = "support"
)

// Roles lists every valid role, in display order.
var Roles = []Role{RoleEngineer, RoleDesigner, RoleManager, RoleQA, RoleSupport}

func IsValidRole(r string) bool {
	for _, role := range Roles {
		if string(role) == r {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

// Employee entity. Role and Team here are the live directory values;
// PTO requests carry their own snapshot taken at creation time.
type Employee struct {
	ID            string
	Name          string
	Email         string
	Role          Role
	Team          string
	Gender        Gender
	MaritalStatus MaritalStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
