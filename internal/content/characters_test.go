package content

import (
	"math/rand"
	"slices"
	"testing"
)

func contains(set []string, s string) bool {
	return slices.Contains(set, s)
}

func TestCharacterSetCumulativeLetters(t *testing.T) {
	l1, l2, l3 := CharacterSet(1), CharacterSet(2), CharacterSet(3)

	if len(l1) != 5 || len(l2) != 18 || len(l3) != 26 {
		t.Fatalf("set sizes = %d/%d/%d, expected 5/18/26", len(l1), len(l2), len(l3))
	}

	for _, c := range l1 {
		if !contains(l2, c) {
			t.Errorf("level 2 missing level 1 character %q", c)
		}
	}
	for _, c := range l2 {
		if !contains(l3, c) {
			t.Errorf("level 3 missing level 2 character %q", c)
		}
	}
}

func TestCharacterSetSpecializedTiers(t *testing.T) {
	l4, l5, l6 := CharacterSet(4), CharacterSet(5), CharacterSet(6)

	if len(l4) != 26 || len(l5) != 10 || len(l6) != 4 {
		t.Fatalf("set sizes = %d/%d/%d, expected 26/10/4", len(l4), len(l5), len(l6))
	}

	for _, c := range l4 {
		if contains(l5, c) || contains(l6, c) {
			t.Errorf("uppercase %q overlaps digits or punctuation", c)
		}
	}
	for _, c := range l5 {
		if contains(l6, c) {
			t.Errorf("digit %q overlaps punctuation", c)
		}
	}
	if !slices.Equal(l6, []string{".", ",", "!", "?"}) {
		t.Errorf("punctuation tier = %v", l6)
	}
}

func TestCharacterSetFallback(t *testing.T) {
	want := CharacterSet(2)
	for _, level := range []int{0, 7, -1, 100} {
		got := CharacterSet(level)
		if !slices.Equal(got, want) {
			t.Errorf("CharacterSet(%d) = %v, expected level 2 set", level, got)
		}
		// Same invalid input twice yields the same fallback.
		if again := CharacterSet(level); !slices.Equal(again, got) {
			t.Errorf("CharacterSet(%d) not stable: %v vs %v", level, got, again)
		}
	}
}

func TestCharacterSetReturnsCopy(t *testing.T) {
	set := CharacterSet(1)
	set[0] = "z"
	if CharacterSet(1)[0] != "a" {
		t.Error("mutating a returned set should not change the table")
	}
}

func TestSpecialCharacterSet(t *testing.T) {
	sizes := map[int]int{1: 6, 2: 14, 3: 21, 4: 28}
	prev := []string{}
	for level := 1; level <= 4; level++ {
		set := SpecialCharacterSet(level)
		if len(set) != sizes[level] {
			t.Errorf("SpecialCharacterSet(%d) has %d symbols, expected %d", level, len(set), sizes[level])
		}
		for _, c := range prev {
			if !contains(set, c) {
				t.Errorf("level %d missing %q from level %d", level, c, level-1)
			}
		}
		prev = set
	}

	for _, level := range []int{0, 5, -3} {
		if got := SpecialCharacterSet(level); !slices.Equal(got, SpecialCharacterSet(1)) {
			t.Errorf("SpecialCharacterSet(%d) = %v, expected basic group", level, got)
		}
	}
}

func TestRandomCharacterDrawsFromSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for level := 0; level <= 7; level++ {
		set := CharacterSet(level)
		for range 50 {
			if c := RandomCharacter(rng, level); !contains(set, c) {
				t.Fatalf("RandomCharacter(%d) = %q, not in set", level, c)
			}
		}
	}
	for level := 1; level <= 4; level++ {
		set := SpecialCharacterSet(level)
		for range 50 {
			if c := RandomSpecialCharacter(rng, level); !contains(set, c) {
				t.Fatalf("RandomSpecialCharacter(%d) = %q, not in set", level, c)
			}
		}
	}
}

func TestRandomCharacterDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for range 20 {
		if RandomCharacter(a, 3) != RandomCharacter(b, 3) {
			t.Fatal("same seed should produce the same characters")
		}
	}
}
