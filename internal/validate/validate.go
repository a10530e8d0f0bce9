// Package validate holds the per-field checks applied to candidate profile input.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Func checks raw user input for a single field and returns a user-facing message when it is rejected.
type Func func(text string) (bool, string)

var (
	nameRe       = regexp.MustCompile(`^[A-Za-z\s\-'.]+$`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneStripRe = regexp.MustCompile(`[\s\-()+]`)
	digitRe      = regexp.MustCompile(`\d`)
	allDigitsRe  = regexp.MustCompile(`^\d+$`)
)

// Name accepts at least two letters, spaces, hyphens, apostrophes or dots.
func Name(text string) (bool, string) {
	name := strings.TrimSpace(text)
	if utf8.RuneCountInString(name) < 2 {
		return false, "Name seems too short. Please enter your full name."
	}
	if !nameRe.MatchString(name) {
		return false, "Name should contain only letters, spaces, hyphens, or apostrophes."
	}
	return true, ""
}

// Email accepts a plain local@domain.tld address.
func Email(text string) (bool, string) {
	if !emailRe.MatchString(strings.TrimSpace(text)) {
		return false, "That doesn't look like a valid email. Example: you@domain.com"
	}
	return true, ""
}

// Phone accepts 7 to 15 digits once spaces, dashes, parentheses and plus signs are removed.
func Phone(text string) (bool, string) {
	cleaned := phoneStripRe.ReplaceAllString(text, "")
	if !allDigitsRe.MatchString(cleaned) {
		return false, "Phone should contain only digits (and optional +, spaces, dashes)."
	}
	if n := len(cleaned); n < 7 || n > 15 {
		return false, fmt.Sprintf("Phone number looks off (%d digits). Expected 7-15 digits.", n)
	}
	return true, ""
}

// Experience requires a digit somewhere in the answer.
func Experience(text string) (bool, string) {
	if !digitRe.MatchString(text) {
		return false, "Please include a number, e.g. '3' or '5+ years'."
	}
	return true, ""
}

// Position requires at least three characters.
func Position(text string) (bool, string) {
	return minLength(text, 3, "Please describe the role(s) you're applying for.")
}

// Location requires at least two characters.
func Location(text string) (bool, string) {
	return minLength(text, 2, "Please share your city and country.")
}

// TechStack requires at least three characters.
func TechStack(text string) (bool, string) {
	return minLength(text, 3, "Please list your technologies, e.g. Python, React, PostgreSQL.")
}

func minLength(text string, n int, msg string) (bool, string) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < n {
		return false, msg
	}
	return true, ""
}
