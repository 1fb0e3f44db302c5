package service

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/elparchetipk/go-auth-api/models"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 100
	passwordMinLen = 8
	// bcrypt silently truncates beyond 72 bytes, so longer passwords are
	// rejected up front.
	passwordMaxLen = 72
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[\p{L}]+(?: [\p{L}]+)*$`)
)

// validateRegisterRequest checks shape and strength of every registration
// field and returns a *ValidationError listing all problems at once, so the
// client can surface them together.
func validateRegisterRequest(req models.RegisterRequest) error {
	var fields []string

	fields = append(fields, validateEmail(req.Email)...)
	fields = append(fields, validateName("givenNames", req.GivenNames)...)
	fields = append(fields, validateName("surname", req.Surname)...)
	fields = append(fields, validatePassword(req.Password)...)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateLoginRequest checks only the shape of the login input; credential
// correctness is decided later against the store.
func validateLoginRequest(req models.LoginRequest) error {
	var fields []string

	fields = append(fields, validateEmail(req.Email)...)
	if req.Password == "" {
		fields = append(fields, "password is required")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateEmail(email string) []string {
	normalized := models.NormalizeEmail(email)
	if normalized == "" {
		return []string{"email is required"}
	}
	if !emailPattern.MatchString(normalized) {
		return []string{"email format is invalid"}
	}
	return nil
}

// validateName enforces the 2-100 character window and the
// letters/diacritics/spaces alphabet shared by givenNames and surname.
func validateName(field, value string) []string {
	if value == "" {
		return []string{field + " is required"}
	}

	length := utf8.RuneCountInString(value)
	if length < nameMinLen || length > nameMaxLen {
		return []string{field + " must be between 2 and 100 characters"}
	}
	if !namePattern.MatchString(value) {
		return []string{field + " may contain only letters and spaces"}
	}
	return nil
}

func validatePassword(password string) []string {
	if password == "" {
		return []string{"password is required"}
	}

	if len(password) < passwordMinLen {
		return []string{"password must be at least 8 characters"}
	}
	if len(password) > passwordMaxLen {
		return []string{"password must be at most 72 characters"}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return []string{"password must contain an uppercase letter, a lowercase letter and a digit"}
	}
	return nil
}
