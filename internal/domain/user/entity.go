package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	firstName    PersonName
	lastName     PersonName
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(firstName, lastName PersonName, email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(
	id uuid.UUID,
	firstName, lastName PersonName,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) IsHost() bool { return u.role == RoleHost }

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) FirstName() PersonName { return u.firstName }
func (u *User) LastName() PersonName  { return u.lastName }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
