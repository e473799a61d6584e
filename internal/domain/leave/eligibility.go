package leave

import "github.com/athena-hr/pto-backend-go/internal/domain/employee"

// EligibilityRule restricts a category to employees matching a predicate
// over their personal attributes. Categories without a rule are always
// retained. Adding a new conditional category means adding a row here,
// not a new branch.
type EligibilityRule struct {
	Category Category
	Eligible func(gender employee.Gender, marital employee.MaritalStatus) bool
}

var eligibilityRules = []EligibilityRule{
	{
		Category: CategoryMaternity,
		Eligible: func(g employee.Gender, m employee.MaritalStatus) bool {
			return g == employee.GenderFemale && m == employee.MaritalMarried
		},
	},
	{
		Category: CategoryPaternity,
		Eligible: func(g employee.Gender, m employee.MaritalStatus) bool {
			return g == employee.GenderMale && m == employee.MaritalMarried
		},
	},
}

// EligibleAllocations filters a policy's category set down to the
// categories the employee qualifies for. Ineligible categories are
// removed entirely so they never show up in the ledger or its totals.
func EligibleAllocations(policy CategoryAllocations, gender employee.Gender, marital employee.MaritalStatus) CategoryAllocations {
	eligible := make(CategoryAllocations, len(policy))
	for category, days := range policy {
		eligible[category] = days
	}
	for _, rule := range eligibilityRules {
		if _, ok := eligible[rule.Category]; !ok {
			continue
		}
		if !rule.Eligible(gender, marital) {
			delete(eligible, rule.Category)
		}
	}
	return eligible
}
