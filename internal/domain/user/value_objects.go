package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordPolicy  = errors.New("password must contain an uppercase letter, a lowercase letter, a digit and one of !@&*_")
	ErrInvalidName     = errors.New("name must contain at least 2 letters and only letters")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^\p{L}[\p{L} '\-]*\p{L}$`)
)

const passwordSpecialChars = "!@&*_"

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

// NewStrongPassword applies the signup policy on top of the length rule.
func NewStrongPassword(s string) (Password, error) {
	p, err := NewPassword(s)
	if err != nil {
		return Password{}, err
	}
	if !IsStrongPassword(s) {
		return Password{}, ErrPasswordPolicy
	}
	return p, nil
}

func IsStrongPassword(s string) bool {
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			special = true
		}
	}
	return len(s) >= 8 && upper && lower && digit && special
}

func (p Password) Value() string {
	return p.value
}

type PersonName struct {
	value string
}

func NewPersonName(s string) (PersonName, error) {
	s = strings.TrimSpace(s)
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < 2 || !nameRegex.MatchString(s) {
		return PersonName{}, ErrInvalidName
	}
	return PersonName{value: s}, nil
}

func (n PersonName) Value() string {
	return n.value
}
