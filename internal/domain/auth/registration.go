package auth

import (
	"stayhub/internal/domain/user"
)

type RegistrationInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	TermsAccepted   bool
}

// Registration is a signup request that passed every account rule.
type Registration struct {
	firstName user.PersonName
	lastName  user.PersonName
	email     user.Email
	password  user.Password
	role      user.Role
}

func NewRegistration(in RegistrationInput) (Registration, error) {
	firstName, err := user.NewPersonName(in.FirstName)
	if err != nil {
		return Registration{}, err
	}
	lastName, err := user.NewPersonName(in.LastName)
	if err != nil {
		return Registration{}, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewStrongPassword(in.Password)
	if err != nil {
		return Registration{}, err
	}
	if in.Password != in.ConfirmPassword {
		return Registration{}, ErrPasswordMismatch
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return Registration{}, err
	}
	if !in.TermsAccepted {
		return Registration{}, ErrTermsNotAccepted
	}

	return Registration{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		password:  password,
		role:      role,
	}, nil
}

// NewUser builds the account once the password has been hashed.
func (r Registration) NewUser(passwordHash string) *user.User {
	return user.NewUser(r.firstName, r.lastName, r.email, passwordHash, r.role)
}

func (r Registration) Email() user.Email       { return r.email }
func (r Registration) Password() user.Password { return r.password }
func (r Registration) Role() user.Role         { return r.role }
