package leave

import (
	"testing"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func TestEligibleAllocations(t *testing.T) {
	t.Parallel()

	policy := CategoryAllocations{
		CategoryPersonal:  20,
		CategorySick:      10,
		CategoryMaternity: 90,
		CategoryPaternity: 14,
	}

	tests := []struct {
		name    string
		gender  employee.Gender
		marital employee.MaritalStatus
		want    []Category
		absent  []Category
	}{
		{
			name:    "married female",
			gender:  employee.GenderFemale,
			marital: employee.MaritalMarried,
			want:    []Category{CategoryPersonal, CategorySick, CategoryMaternity},
			absent:  []Category{CategoryPaternity},
		},
		{
			name:    "married male",
			gender:  employee.GenderMale,
			marital: employee.MaritalMarried,
			want:    []Category{CategoryPersonal, CategorySick, CategoryPaternity},
			absent:  []Category{CategoryMaternity},
		},
		{
			name:    "single female",
			gender:  employee.GenderFemale,
			marital: employee.MaritalSingle,
			want:    []Category{CategoryPersonal, CategorySick},
			absent:  []Category{CategoryMaternity, CategoryPaternity},
		},
		{
			name:    "single male",
			gender:  employee.GenderMale,
			marital: employee.MaritalSingle,
			want:    []Category{CategoryPersonal, CategorySick},
			absent:  []Category{CategoryMaternity, CategoryPaternity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EligibleAllocations(policy, tt.gender, tt.marital)
			for _, cat := range tt.want {
				assert.Equal(t, policy[cat], got[cat])
			}
			for _, cat := range tt.absent {
				_, ok := got[cat]
				assert.False(t, ok, "category %s must be removed, not zeroed", cat)
			}
			assert.Len(t, got, len(tt.want))
		})
	}
}

func TestEligibleAllocations_DoesNotMutatePolicy(t *testing.T) {
	t.Parallel()

	policy := CategoryAllocations{CategoryMaternity: 90, CategoryPersonal: 20}
	_ = EligibleAllocations(policy, employee.GenderMale, employee.MaritalSingle)

	assert.Equal(t, 90, policy[CategoryMaternity])
	assert.Len(t, policy, 2)
}
