package service

import "unicode/utf8"

// Strength grades a password on the registration screen.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "Weak password"
	case StrengthMedium:
		return "Medium password"
	case StrengthStrong:
		return "Strong password"
	default:
		return ""
	}
}

// PasswordStrength scores one point each for a length of at least 8, a
// lowercase ASCII letter, an uppercase ASCII letter, a digit and any other
// character.
// Up to 2 points is weak, 3 is medium, more is strong.
func PasswordStrength(password string) Strength {
	if password == "" {
		return StrengthNone
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	score := 0
	for _, ok := range []bool{utf8.RuneCountInString(password) >= 8, lower, upper, digit, other} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return StrengthWeak
	case score == 3:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
