package commands

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/auth"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.MarkAll(errs.New("user not found"), errs.ErrUnauthenticated)
	ErrInvalidCredentials = errs.MarkAll(errs.New("invalid email or password"), errs.ErrUnauthenticated)
	ErrEmailTaken         = errs.MarkAll(errs.New("email is already registered"), errs.ErrConflict)
	ErrTokenGeneration    = errs.MarkAll(errs.New("token generation failed"), errs.ErrStorageFailure)
	ErrTokenValidation    = errs.MarkAll(errs.New("token validation failed"), errs.ErrUnauthenticated)
)

type SignupInput = auth.RegistrationInput

type SignupResult struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      string
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (*SignupResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	reg, err := auth.NewRegistration(in)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	u := reg.NewUser(hash)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	slog.InfoContext(ctx, "user signed up", "user_id", u.ID(), "role", u.Role().String())
	return &SignupResult{
		UserID: u.ID(),
		Email:  u.Email().Value(),
		Role:   u.Role().String(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	creds, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidCredentials, errs.ErrUnauthenticated)
	}

	pair, err := a.issueTokens(creds.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), creds.ID); updateErr != nil {
			slog.WarnContext(ctx, "failed to update last login", "user_id", creds.ID, "error", updateErr.Error())
		}
		if password.NeedsRehash(creds.PasswordHash) {
			a.rehash(ctx, tx, creds.ID, credentials.Password().Value())
		}
		return nil
	})
	if err != nil {
		// login already succeeded; only bookkeeping was lost
		slog.WarnContext(ctx, "transaction failed during login", "user_id", creds.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    creds.ID,
		Role:      role.String(),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.MarkAll(err, ErrTokenValidation, errs.ErrUnauthenticated)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// the account may have been removed since the token was issued
	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.MarkAll(err, ErrTokenValidation, errs.ErrUnauthenticated)
	}

	return a.issueTokens(snap.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.MarkAll(err, ErrTokenGeneration, errs.ErrStorageFailure)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.MarkAll(err, ErrTokenGeneration, errs.ErrStorageFailure)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// validateUser returns the same error for an unknown email and a wrong password.
func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserCredentials, error) {
	creds, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if err := password.ComparePassword(creds.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return creds, nil
}

func (a *authCommandsImpl) rehash(ctx context.Context, tx shared.Tx, userID uuid.UUID, plain string) {
	hash, err := password.HashPassword(plain)
	if err != nil {
		slog.WarnContext(ctx, "password rehash failed", "user_id", userID, "error", err.Error())
		return
	}
	if err := tx.Users().UpdatePasswordHash(ctx, tx.DB(), userID, hash); err != nil {
		slog.WarnContext(ctx, "failed to store rehashed password", "user_id", userID, "error", err.Error())
	}
}
