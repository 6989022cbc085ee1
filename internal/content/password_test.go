package content

import (
	"math/rand"
	"strings"
	"testing"
)

func TestPasswordLength(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{-5, 4},
		{0, 4},
		{1, 4},
		{2, 5},
		{5, 8},
		{7, 10},
		{8, 11},
		{9, 12},
		{20, 12},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range tests {
		if got := PasswordLength(tc.level); got != tc.expected {
			t.Errorf("PasswordLength(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
		if got := len(GeneratePassword(rng, tc.level)); got != tc.expected {
			t.Errorf("len(GeneratePassword(%d)) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestPasswordAlphabet(t *testing.T) {
	if len(passwordAlphabet) != 80 {
		t.Fatalf("alphabet has %d symbols, expected 80", len(passwordAlphabet))
	}
	if len(passwordMarks) != 18 {
		t.Fatalf("special set has %d symbols, expected 18", len(passwordMarks))
	}

	rng := rand.New(rand.NewSource(99))
	alphabet := string(passwordAlphabet)
	for range 200 {
		for _, r := range GeneratePassword(rng, 7) {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("password contains %q outside the alphabet", r)
			}
		}
	}
}
