package validator

import (
	"testing"
	"time"
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
	if _, ok := IsValidDate("2026-03-02"); !ok {
		t.Error("IsValidDate(\"2026-03-02\") = false, want true")
	}
	invalid := []string{"2026-3-2", "02-03-2026", "2026-03-02T09:00", "mañana", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2026-03-02T09:00:00Z",
		"2026-03-02T09:00:00+07:00",
		"2026-03-02T09:00:00",
		"2026-03-02T09:00",
	}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	invalid := []string{"2026-03-02", "09:00", "ayer", ""}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTimeKeepsZone(t *testing.T) {
	parsed, ok := IsValidDateTime("2026-03-02T09:00:00Z")
	if !ok {
		t.Fatal("expected valid timestamp")
	}
	want := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("parsed = %v, want %v", parsed, want)
	}
}

func TestIsDecimal(t *testing.T) {
	cases := []struct {
		input string
		value float64
		ok    bool
	}{
		{"2", 2, true},
		{"2.5", 2.5, true},
		{" 0 ", 0, true},
		{"-1", -1, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		value, ok := IsDecimal(c.input)
		if ok != c.ok || (ok && value != c.value) {
			t.Errorf("IsDecimal(%q) = (%v, %v), want (%v, %v)", c.input, value, ok, c.value, c.ok)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "horas", Message: "horas is required"},
		{Field: "motivo", Message: "motivo is required"},
	}
	if got := errs.Error(); got != "horas: horas is required; motivo: motivo is required" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["horas"] != "horas is required" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}
