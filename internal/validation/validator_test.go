package validation

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "Dupont", false},
		{"accented name", "Lévêque", false},
		{"hyphenated name", "Jean-Pierre", false},
		{"apostrophe", "O'Neill", false},
		{"with space", "De La Tour", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"digits", "Dupont3", true},
		{"punctuation", "Du.pont", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("ValidateName(%q) error should wrap ErrInvalidName, got %v", tt.input, err)
			}
		})
	}
}

func TestValidateBirthdate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(DateFormat)
	today := time.Now().Format(DateFormat)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "1992-07-14", false},
		{"min year boundary", "1915-01-01", false},
		{"before min year", "1914-12-31", true},
		{"today", today, true},
		{"future", tomorrow, true},
		{"wrong layout", "14/07/1992", true},
		{"impossible day", "1992-02-30", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBirthdate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBirthdate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNationalID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid id", "AB12345", false},
		{"lowercase letters", "ab12345", false},
		{"surrounding spaces", " AB12345 ", false},
		{"too short", "AB1234", true},
		{"too long", "AB123456", true},
		{"digits first", "12345AB", true},
		{"one letter", "A123456", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNationalID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNationalID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2025-07-01"); err != nil {
		t.Errorf("ValidateDate valid date error = %v", err)
	}
	if err := ValidateDate("01-07-2025"); err == nil {
		t.Error("ValidateDate should reject DD-MM-YYYY")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dupont", "Dupont"},
		{"DUPONT", "Dupont"},
		{"jean-pierre", "Jean-Pierre"},
		{"o'neill", "O'Neill"},
		{"de la tour", "De La Tour"},
		{"  dupont  ", "Dupont"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeID(t *testing.T) {
	if got := NormalizeID(" ab12345 "); got != "AB12345" {
		t.Errorf("NormalizeID = %q, want AB12345", got)
	}
}
