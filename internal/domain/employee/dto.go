package employee

import "github.com/athena-hr/pto-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Team          string `json:"team"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of engineer, designer, manager, qa, support",
		})
	}

	if validator.IsEmpty(r.Team) {
		errs = append(errs, validator.ValidationError{
			Field:   "team",
			Message: "team is required",
		})
	}

	if r.Gender != "" && r.Gender != string(GenderMale) && r.Gender != string(GenderFemale) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male or female",
		})
	}

	if r.MaritalStatus != "" && r.MaritalStatus != string(MaritalSingle) && r.MaritalStatus != string(MaritalMarried) {
		errs = append(errs, validator.ValidationError{
			Field:   "maritalStatus",
			Message: "maritalStatus must be single or married",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
