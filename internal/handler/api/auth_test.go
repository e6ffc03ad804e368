//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/handler/validation"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockAuthCommands
	mockQueries   *queriesmock.MockUserQueries
	mockValidator *usecasemock.MockTokenValidator
	handler       *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	jwtService := jwt.NewService("handler-test-secret", 15*time.Minute, time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig())
	authMw := middleware.NewAuthMiddleware(s.mockValidator)

	s.router.POST("/auth/signup", s.handler.Signup)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", authMw.RequireAuth(), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	reqBody := builder.NewAuthBuilder().BuildSignupDTO()

	s.Run("success: returns 201 with the new account", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody.ToInput()).
			Return(&commands.SignupResult{UserID: id, Email: reqBody.Email, Role: "guest"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SignupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
		s.Equal("guest", response.Role)
	})

	s.Run("error: 400 Bad Request names the failing field", func() {
		cases := []testCaseAuth{
			{name: "short first name", mutate: testutil.Field("firstName", "J"), expectInBody: `"firstName":"min"`},
			{name: "bad email", mutate: testutil.Field("email", "not-an-email"), expectInBody: `"email":"email"`},
			{name: "weak password", mutate: testutil.Field("password", "password1"), expectInBody: `"password":"strongpassword"`},
			{name: "confirmation mismatch", mutate: testutil.Field("confirmPassword", "Secret_124"), expectInBody: `"confirmPassword":"eqfield"`},
			{name: "unknown role", mutate: testutil.Field("role", "admin"), expectInBody: `"role":"oneof"`},
			{name: "missing email", mutate: testutil.Field("email", nil), expectInBody: `"email":"required"`},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
				s.Contains(rec.Body.String(), tc.expectInBody)
			})
		}
	})

	s.Run("error: 409 Conflict on duplicate email", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Signup failed")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"
	expectedRefresh := "test-refresh-token"
	loginResult := &commands.LoginResult{
		UserID:    returnUser.ID,
		Role:      returnUser.Role,
		TokenPair: &commands.TokenPair{AccessToken: expectedToken, RefreshToken: expectedRefresh},
	}

	s.Run("success: returns 200 OK and sets both cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).Return(loginResult, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal(expectedToken, response.AccessToken)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal(expectedToken, access.Value)
		s.True(access.HttpOnly)
		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refresh)
		s.Equal(expectedRefresh, refresh.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password 7 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	s.Run("success: reads the refresh cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(pair, nil)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("success: falls back to the body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "body-refresh").Return(pair, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"refreshToken": "body-refresh"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 and cleared cookies on an invalid token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, commands.ErrTokenValidation)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "stale"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid refresh token")
		cleared := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockValidator.EXPECT().ValidateToken("bearer-token").Return(returnUser.ID, user.Role(returnUser.Role), nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
		s.Equal(returnUser.FirstName, response["firstName"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryError     error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "user removed after token issue",
				queryError:     queries.ErrUserNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "User not found",
			},
			{
				name:           "internal server error",
				queryError:     errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockValidator.EXPECT().ValidateToken("bearer-token").Return(returnUser.ID, user.Role(returnUser.Role), nil)
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(nil, tc.queryError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
