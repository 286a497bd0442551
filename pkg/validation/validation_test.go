package validation

import (
	"math"
	"strings"
	"testing"
)

func TestValidateShapeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"simple", "wall", "wall", false},
		{"with separators", "level-1.box_2:a", "level-1.box_2:a", false},
		{"trimmed", "  ball  ", "ball", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"space inside", "big box", "", true},
		{"too long", strings.Repeat("a", MaxShapeNameLen+1), "", true},
		{"max length", strings.Repeat("a", MaxShapeNameLen), strings.Repeat("a", MaxShapeNameLen), false},
		{"markup", "<b>", "", true},
		{"invalid utf8", "\xff\xfe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateShapeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateShapeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ValidateShapeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite("center", 1, -2, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateFinite("center", 1, math.NaN()); err == nil {
		t.Error("expected error for NaN")
	}
	if err := ValidateFinite("size", math.Inf(-1)); err == nil {
		t.Error("expected error for -Inf")
	}
}

func TestValidateRadius(t *testing.T) {
	tests := []struct {
		radius  float64
		wantErr bool
	}{
		{0, false},
		{4, false},
		{-0.5, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		if err := ValidateRadius(tt.radius); (err != nil) != tt.wantErr {
			t.Errorf("ValidateRadius(%v) error = %v, wantErr %v", tt.radius, err, tt.wantErr)
		}
	}
}

func TestValidateSegment(t *testing.T) {
	if err := ValidateSegment(0, 0, 1, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateSegment(2, 3, 2, 3); err == nil {
		t.Error("expected error for coincident endpoints")
	}
	if err := ValidateSegment(0, math.NaN(), 1, 1); err == nil {
		t.Error("expected error for NaN endpoint")
	}
}

func TestValidateShapeCount(t *testing.T) {
	if err := ValidateShapeCount(MaxSceneShapes); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateShapeCount(MaxSceneShapes + 1); err == nil {
		t.Error("expected error above the limit")
	}
}
