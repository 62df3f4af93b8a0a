package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Registration number pattern, e.g. 20211234567 or BME/2021/043
	RegNumberPattern = `^[A-Za-z0-9][A-Za-z0-9/\-]{3,49}$`

	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Academic session label, e.g. 2023/2024
	SessionPattern = `^\d{4}/\d{4}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 200
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	RegNumber *regexp.Regexp
	Email     *regexp.Regexp
	Session   *regexp.Regexp
}{
	RegNumber: regexp.MustCompile(RegNumberPattern),
	Email:     regexp.MustCompile(EmailPattern),
	Session:   regexp.MustCompile(SessionPattern),
}

// IsValidRegNumber reports whether s is an acceptable registration number.
func IsValidRegNumber(s string) bool {
	return CompiledPatterns.RegNumber.MatchString(s)
}

// IsValidEmail reports whether s is an acceptable email address.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidSession reports whether s is an academic session label like 2023/2024.
func IsValidSession(s string) bool {
	return CompiledPatterns.Session.MatchString(s)
}

// IsValidName reports whether s is an acceptable person/display name.
func IsValidName(s string) bool {
	return len(s) >= NameMinLength && len(s) <= NameMaxLength
}
