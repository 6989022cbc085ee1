// Package content holds the static practice material: character tables,
// themed word lists, password generation and encouragement messages.
//
// Everything here is read-only. Random selection takes an injected
// *rand.Rand so callers decide the seed.
package content

import (
	"math/rand"
	"slices"
)

// Character groups. Each entry is a single-character target.
var (
	vowels               = []string{"a", "e", "i", "o", "u"}
	commonConsonants     = []string{"b", "c", "d", "f", "g", "h", "l", "m", "n", "p", "r", "s", "t"}
	lessCommonConsonants = []string{"j", "k", "q", "v", "w", "x", "y", "z"}
	uppercase            = []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	}
	numbers     = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	punctuation = []string{".", ",", "!", "?"}

	specialBasic       = []string{"@", "#", "$", "%", "&", "*"}
	specialAdvanced    = []string{"(", ")", "[", "]", "{", "}", "<", ">"}
	specialSymbols     = []string{"+", "-", "=", "_", "/", "\\", "|"}
	specialPunctuation = []string{":", ";", "\"", "'", "~", "`", "^"}
)

// Tier bounds for the letter and special character tables.
const (
	MinCharacterLevel = 1
	MaxCharacterLevel = 6
	MinSpecialLevel   = 1
	MaxSpecialLevel   = 4
)

// CharacterSet returns the characters practiced at the given letters tier.
//
//	1: vowels
//	2: vowels + common consonants
//	3: all lowercase letters
//	4: uppercase letters
//	5: digits
//	6: basic punctuation
//
// Any other level falls back to the level 2 set.
func CharacterSet(level int) []string {
	switch level {
	case 1:
		return slices.Clone(vowels)
	case 2:
		return slices.Concat(vowels, commonConsonants)
	case 3:
		return AllLowercase()
	case 4:
		return slices.Clone(uppercase)
	case 5:
		return slices.Clone(numbers)
	case 6:
		return slices.Clone(punctuation)
	default:
		return slices.Concat(vowels, commonConsonants)
	}
}

// RandomCharacter picks a character uniformly from CharacterSet(level).
func RandomCharacter(rng *rand.Rand, level int) string {
	return pick(rng, CharacterSet(level))
}

// AllLowercase returns every lowercase letter, vowels first.
func AllLowercase() []string {
	return slices.Concat(vowels, commonConsonants, lessCommonConsonants)
}

// SpecialCharacterSet returns the cumulative symbol set for a special tier:
// basic, then brackets, then symbols, then punctuation.
// Any other level falls back to the basic group.
func SpecialCharacterSet(level int) []string {
	switch level {
	case 1:
		return slices.Clone(specialBasic)
	case 2:
		return slices.Concat(specialBasic, specialAdvanced)
	case 3:
		return slices.Concat(specialBasic, specialAdvanced, specialSymbols)
	case 4:
		return slices.Concat(specialBasic, specialAdvanced, specialSymbols, specialPunctuation)
	default:
		return slices.Clone(specialBasic)
	}
}

// RandomSpecialCharacter picks a symbol uniformly from SpecialCharacterSet(level).
func RandomSpecialCharacter(rng *rand.Rand, level int) string {
	return pick(rng, SpecialCharacterSet(level))
}

// pick returns a uniformly chosen element of items.
func pick(rng *rand.Rand, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rng.Intn(len(items))]
}
