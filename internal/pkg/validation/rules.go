package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern matches any syntactically plausible email address
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// UniversityEmailPattern gates student self-signup to the university domain
	UniversityEmailPattern = `^[a-zA-Z0-9]+@diu\.edu\.bd$`

	// FacultyEmailPattern allows dots and plus-addressing for staff accounts
	FacultyEmailPattern = `^[a-zA-Z0-9._%+\-]+@diu\.edu\.bd$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email           *regexp.Regexp
	UniversityEmail *regexp.Regexp
	FacultyEmail    *regexp.Regexp
}{
	Email:           regexp.MustCompile(EmailPattern),
	UniversityEmail: regexp.MustCompile(UniversityEmailPattern),
	FacultyEmail:    regexp.MustCompile(FacultyEmailPattern),
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// IsUniversityEmail reports whether s is a student email on the university domain.
func IsUniversityEmail(s string) bool {
	return CompiledPatterns.UniversityEmail.MatchString(strings.TrimSpace(s))
}

// IsFacultyEmail reports whether s is a staff email on the university domain.
func IsFacultyEmail(s string) bool {
	return CompiledPatterns.FacultyEmail.MatchString(strings.TrimSpace(s))
}

// IsValidPassword reports whether the password meets the minimum length rule.
func IsValidPassword(s string) bool {
	return len(s) >= PasswordMinLength
}

// IsValidCode reports whether a department or course code is uppercase alphanumeric.
func IsValidCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}
