package utils

import "regexp"

// Matches local@domain.tld without whitespace, the same shape the
// frontend validates against.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
