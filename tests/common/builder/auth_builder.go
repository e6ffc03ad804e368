//go:build unit || e2e

package builder

import (
	reqdto "stayhub/internal/handler/dto/request"
)

type AuthBuilder struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	TermsAccepted   bool
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "test@example.com",
		Password:        "Secret_123",
		ConfirmPassword: "Secret_123",
		Role:            "guest",
		TermsAccepted:   true,
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Password:        a.Password,
		ConfirmPassword: a.ConfirmPassword,
		Role:            a.Role,
		TermsAccepted:   a.TermsAccepted,
	}
}
