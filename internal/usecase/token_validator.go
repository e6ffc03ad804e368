package usecase

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrNotAccessToken = errs.MarkAll(errs.New("refresh token cannot be used for authentication"), errs.ErrUnauthenticated)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts access tokens only.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrUnauthenticated)
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrUnauthenticated)
	}

	return claims.UserID, role, nil
}
