//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/cookie"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleGuest))
}

func (s *authSuite) TestSignup() {
	s.Run("success: account can log in afterwards", func() {
		body := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) {
			b.Email = "new.host@example.com"
			b.Role = "host"
		}).BuildSignupDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		var res resdto.SignupResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("host", res.Role)
		s.NotEqual(uuid.Nil, res.ID)

		token := authtest.LoginUser(s.T(), s.Router, "new.host@example.com", body.Password)
		s.NotEmpty(token)
	})

	s.Run("error: duplicate email in any case is 409", func() {
		body := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) {
			b.Email = "GUEST@example.com"
		}).BuildSignupDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("error: terms not accepted is 400", func() {
		body := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) {
			b.Email = "terms@example.com"
			b.TermsAccepted = false
		}).BuildSignupDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusOK},
		{name: "email is case insensitive", email: "Guest@Example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusOK},
		{name: "wrong password", email: "guest@example.com", password: "Wrong_pass1", wantStatus: http.StatusUnauthorized},
		{name: "unknown email", email: "nobody@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tt.wantStatus, "Invalid email or password")
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
			s.Equal("guest@example.com", res.User.Email)
			s.NotNil(httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			s.NotNil(httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))
		})
	}
}

func (s *authSuite) TestMeAndRefresh() {
	s.Run("me with cookie and with bearer token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
		cookies := httptest.ExtractCookies(w)

		me := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, cookies, "")
		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), me, http.StatusOK, &res)
		s.Equal("guest", res.Role)

		access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		me = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, access.Value)
		httptest.AssertSuccessResponse(s.T(), me, http.StatusOK, nil)
	})

	s.Run("refresh issues a new pair", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		refresh := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)}, "")
		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), refresh, http.StatusOK, &res)
		s.NotEmpty(res.AccessToken)
	})

	s.Run("access token cannot be used to refresh", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", "guest")
		access := s.jwtHelper.GenerateToken(s.T(), id, user.RoleGuest)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: access}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("expired and missing tokens are 401", func() {
		expired := s.jwtHelper.CreateExpiredToken(s.T(), uuid.New(), user.RoleGuest)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, expired)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("logout clears cookies", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		s.Equal(http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}
