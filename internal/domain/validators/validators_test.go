package validators

import (
	"errors"
	"testing"
)

func TestValidateTaxID(t *testing.T) {
	t.Run("plain digits", func(t *testing.T) {
		got, err := ValidateTaxID("12345678901")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "12345678901" {
			t.Fatalf("unexpected tax id: %s", got)
		}
	})

	t.Run("formatted input is normalized", func(t *testing.T) {
		got, err := ValidateTaxID("123.456.789-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "12345678901" {
			t.Fatalf("expected digit-only form, got %s", got)
		}
	})

	t.Run("too short", func(t *testing.T) {
		if _, err := ValidateTaxID("1234567890"); !errors.Is(err, ErrInvalidTaxID) {
			t.Fatalf("expected ErrInvalidTaxID, got %v", err)
		}
	})

	t.Run("too long", func(t *testing.T) {
		if _, err := ValidateTaxID("123456789012"); !errors.Is(err, ErrInvalidTaxID) {
			t.Fatalf("expected ErrInvalidTaxID, got %v", err)
		}
	})

	t.Run("letters only", func(t *testing.T) {
		if _, err := ValidateTaxID("abcdefghijk"); !errors.Is(err, ErrInvalidTaxID) {
			t.Fatalf("expected ErrInvalidTaxID, got %v", err)
		}
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run("landline with ddd", func(t *testing.T) {
		got, err := ValidatePhone("1133334444")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "1133334444" {
			t.Fatalf("unexpected phone: %s", got)
		}
	})

	t.Run("mobile with formatting", func(t *testing.T) {
		got, err := ValidatePhone("(11) 98888-7777")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "11988887777" {
			t.Fatalf("expected digit-only form, got %s", got)
		}
	})

	t.Run("too short", func(t *testing.T) {
		if _, err := ValidatePhone("987654321"); !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})
}

func TestValidateEmail(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ValidateEmail("  maria@example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "maria@example.com" {
			t.Fatalf("expected trimmed email, got %q", got)
		}
	})

	t.Run("missing at", func(t *testing.T) {
		if _, err := ValidateEmail("maria.example.com"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("missing domain dot", func(t *testing.T) {
		if _, err := ValidateEmail("maria@example"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("spaces inside", func(t *testing.T) {
		if _, err := ValidateEmail("maria silva@example.com"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})
}
