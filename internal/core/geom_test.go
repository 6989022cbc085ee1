package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 4, 12, 5},   // within range
		{-5, 4, 12, 4},  // below min
		{15, 4, 12, 12}, // above max
		{4, 4, 12, 4},   // at min
		{12, 4, 12, 12}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.3, 0.0, 1.0, 0.3},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, total int
		expected    int
	}{
		{"no attempts", 0, 0, 0},
		{"all correct", 10, 10, 100},
		{"two thirds", 2, 3, 66},
		{"none correct", 0, 4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percent(tc.part, tc.total); got != tc.expected {
				t.Errorf("Percent(%d, %d) = %d, expected %d", tc.part, tc.total, got, tc.expected)
			}
		})
	}
}

func TestRuntimeConfigWithSize(t *testing.T) {
	cfg := DefaultConfig().WithSize(120, 40)
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("WithSize(120, 40) = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}

	kept := cfg.WithSize(0, -1)
	if kept.ScreenW != 120 || kept.ScreenH != 40 {
		t.Errorf("WithSize(0, -1) should keep dimensions, got %dx%d", kept.ScreenW, kept.ScreenH)
	}
}
