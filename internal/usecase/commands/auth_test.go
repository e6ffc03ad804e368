//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	sharedmock "stayhub/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	users   *sharedmock.MockUserRepository
	jwt     *jwt.Service
	useCase commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
		users: sharedmock.NewMockUserRepository(ctrl),
		jwt:   jwt.NewService("unit-test-secret", 15*time.Minute, time.Hour),
	}
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.useCase = commands.NewAuthCommands(f.uow, f.jwt)
	return f
}

func validSignup() commands.SignupInput {
	return commands.SignupInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "Jane@Example.com",
		Password:        "Secret_123",
		ConfirmPassword: "Secret_123",
		Role:            "host",
		TermsAccepted:   true,
	}
}

func TestAuthCommands_Signup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) error {
				assert.Equal(t, "jane@example.com", u.Email().Value())
				assert.NotEqual(t, "Secret_123", u.PasswordHash())
				assert.NoError(t, password.ComparePassword(u.PasswordHash(), "Secret_123"))
				return nil
			})

		got, err := f.useCase.Signup(context.Background(), validSignup())

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", got.Email)
		assert.Equal(t, "host", got.Role)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey))

		_, err := f.useCase.Signup(context.Background(), validSignup())

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	invalid := []struct {
		name   string
		mutate func(*commands.SignupInput)
	}{
		{"short first name", func(in *commands.SignupInput) { in.FirstName = "J" }},
		{"bad email", func(in *commands.SignupInput) { in.Email = "not-an-email" }},
		{"weak password", func(in *commands.SignupInput) { in.Password, in.ConfirmPassword = "secret12", "secret12" }},
		{"confirmation mismatch", func(in *commands.SignupInput) { in.ConfirmPassword = "Secret_124" }},
		{"unknown role", func(in *commands.SignupInput) { in.Role = "admin" }},
		{"terms not accepted", func(in *commands.SignupInput) { in.TermsAccepted = false }},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t)
			in := validSignup()
			tc.mutate(&in)

			_, err := f.useCase.Signup(context.Background(), in)

			assert.True(t, errs.Is(err, errs.ErrInvalidInput))
		})
	}
}

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("Secret_123")
	require.NoError(t, err)
	u := builder.NewUserBuilder().WithPasswordHash(hash)

	t.Run("success issues a token pair", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u.BuildCredentials(), nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), u.ID).Return(nil)

		got, err := f.useCase.Login(context.Background(), u.Email, "Secret_123")

		require.NoError(t, err)
		assert.Equal(t, u.ID, got.UserID)
		claims, err := f.jwt.ValidateToken(got.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		claims, err = f.jwt.ValidateToken(got.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		f.reads.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u.BuildCredentials(), nil)

		_, unknownErr := f.useCase.Login(context.Background(), "nobody@example.com", "Secret_123")
		_, wrongErr := f.useCase.Login(context.Background(), u.Email, "Wrong_123")

		assert.ErrorIs(t, unknownErr, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, commands.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
		assert.True(t, errs.Is(wrongErr, errs.ErrUnauthenticated))
	})

	t.Run("weak stored hash is upgraded", func(t *testing.T) {
		weak, err := bcrypt.GenerateFromPassword([]byte("Secret_123"), bcrypt.MinCost)
		require.NoError(t, err)
		wu := builder.NewUserBuilder().WithPasswordHash(string(weak))

		f := newAuthFixture(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), wu.Email).Return(wu.BuildCredentials(), nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), wu.ID).Return(assert.AnError)
		f.users.EXPECT().UpdatePasswordHash(gomock.Any(), gomock.Any(), wu.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ any, h string) error {
				assert.False(t, password.NeedsRehash(h))
				return nil
			})

		_, err = f.useCase.Login(context.Background(), wu.Email, "Secret_123")

		assert.NoError(t, err)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), u.Email).
			Return(nil, infra.WrapRepoErr("failed to get user", assert.AnError))

		_, err := f.useCase.Login(context.Background(), u.Email, "Secret_123")

		assert.True(t, errs.Is(err, errs.ErrStorageFailure))
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	u := builder.NewUserBuilder().AsHost()

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, err := f.jwt.GenerateRefreshToken(u.ID, user.RoleHost)
		require.NoError(t, err)
		f.reads.EXPECT().UserByID(gomock.Any(), u.ID).Return(u.BuildSnapshot(), nil)

		pair, err := f.useCase.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		claims, err := f.jwt.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "host", claims.Role)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		access, err := f.jwt.GenerateAccessToken(u.ID, user.RoleHost)
		require.NoError(t, err)

		_, err = f.useCase.RefreshToken(context.Background(), access)

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("removed account", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, err := f.jwt.GenerateRefreshToken(u.ID, user.RoleHost)
		require.NoError(t, err)
		f.reads.EXPECT().UserByID(gomock.Any(), u.ID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err = f.useCase.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
