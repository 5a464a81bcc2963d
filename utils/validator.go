// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}

	return true, ""
}

// ValidateNationalID checks the 13-digit Thai national ID including its
// mod-11 check digit.
func ValidateNationalID(id string) bool {
	id = strings.TrimSpace(id)
	if len(id) != 13 {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		d := id[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * (13 - i)
	}

	last := id[12]
	if last < '0' || last > '9' {
		return false
	}
	check := (11 - sum%11) % 10
	return int(last-'0') == check
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
