package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-10-01"); !ok {
		t.Errorf("IsValidDate(2025-10-01) = false, want true")
	}
	invalid := []string{"2025-13-01", "01-10-2025", "2025/10/01", "yesterday", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2025, true},
		{2000, true},
		{2100, true},
		{1999, false},
		{0, false},
		{-1, false},
	}
	for _, c := range cases {
		if got := IsValidYear(c.year); got != c.want {
			t.Errorf("IsValidYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}
