package request

import (
	"stayhub/internal/usecase/commands"
)

type SignupRequest struct {
	FirstName       string `json:"firstName" binding:"required,min=2,max=100"`
	LastName        string `json:"lastName" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Role            string `json:"role" binding:"required,oneof=guest host"`
	TermsAccepted   bool   `json:"termsAccepted"`
}

func (r *SignupRequest) ToInput() commands.SignupInput {
	return commands.SignupInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Role:            r.Role,
		TermsAccepted:   r.TermsAccepted,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest is optional; the refresh cookie wins when both are present.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
