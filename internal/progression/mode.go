package progression

// Mode selects the active target generator.
type Mode string

const (
	ModeLetters  Mode = "letters"
	ModeWords    Mode = "words"
	ModeSpecial  Mode = "special"
	ModePassword Mode = "password"
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeLetters, ModeWords, ModeSpecial, ModePassword}
}

// ParseMode converts a name to a Mode. The bool is false for unknown names.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, true
		}
	}
	return ModeLetters, false
}

// Valid reports whether m is one of the four modes.
func (m Mode) Valid() bool {
	_, ok := ParseMode(string(m))
	return ok
}

// CaseSensitive reports whether input is compared exactly in this mode.
// Letters and words compare case-insensitively.
func (m Mode) CaseSensitive() bool {
	return m == ModeSpecial || m == ModePassword
}

// Title returns the menu label for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeWords:
		return "Words"
	case ModeSpecial:
		return "Special Characters"
	case ModePassword:
		return "Passwords"
	default:
		return "Letters"
	}
}

// Prompt returns the instruction line shown above the target.
func (m Mode) Prompt() string {
	switch m {
	case ModeWords:
		return "Level 2 - Type the word!"
	case ModeSpecial:
		return "Level 3 - Type the special character!"
	case ModePassword:
		return "Level 4 - Type the hard password!"
	default:
		return "Level 1 - Type the letter!"
	}
}
