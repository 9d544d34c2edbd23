package models

import (
	"errors"
	"testing"
)

func TestCodeToLabel(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{"win", "V", LabelWin, false},
		{"loss", "D", LabelLoss, false},
		{"draw", "N", LabelDraw, false},
		{"exempt", "E", LabelExempt, false},
		{"lowercase", "v", LabelWin, false},
		{"surrounding spaces", " n ", LabelDraw, false},
		{"unknown", "X", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CodeToLabel(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CodeToLabel(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidCode) {
					t.Errorf("error should wrap ErrInvalidCode, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("CodeToLabel(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLabelToPoints(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{LabelWin, 1.0},
		{LabelLoss, 0.0},
		{LabelDraw, 0.5},
		{LabelExempt, 1.0},
	}

	for _, tt := range tests {
		got, err := LabelToPoints(tt.label)
		if err != nil {
			t.Fatalf("LabelToPoints(%q) error = %v", tt.label, err)
		}
		if got != tt.want {
			t.Errorf("LabelToPoints(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}

	if _, err := LabelToPoints("victory"); !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("LabelToPoints on unknown label error = %v, want ErrInvalidLabel", err)
	}
}

func TestIsValidCode(t *testing.T) {
	for _, code := range []string{"V", "D", "N", "E", "v", " e "} {
		if !IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "W", "VD", "1"} {
		if IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = true, want false", code)
		}
	}
}
