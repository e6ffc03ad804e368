package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/handler/validation"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errRefreshTokenMissing = errs.MarkAll(errs.New("refresh token required"), errs.ErrUnauthenticated)

type AuthHandler struct {
	cmds       commands.AuthCommands
	users      queries.UserQueries
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		users:      users,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Sign up
// @Description Register a guest or host account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Signup failed")
		return
	}

	c.JSON(http.StatusCreated, resdto.SignupResponse{
		ID:    result.UserID,
		Email: result.Email,
		Role:  result.Role,
	})
}

// @Summary User login
// @Description Login with email and password. Tokens are set as HttpOnly cookies and returned in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errs.ErrUnauthenticated) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.Abort(c, err, "Login failed")
		return
	}

	current, err := h.users.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load user")
		return
	}
	user, err := resdto.FromAuthorizedUserView(current)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		User:         user,
	})
}

// @Summary Refresh tokens
// @Description Exchange the refresh_token cookie (or body field) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errRefreshTokenMissing, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		cookie.ClearTokenCookies(c, h.cookieCfg)
		httperr.Abort(c, err, "Invalid refresh token")
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary User logout
// @Description Clears the auth cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWTs are stateless; dropping the cookies is all the server can do.
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// token outlived the account
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "User not found", nil)
			return
		}
		httperr.Abort(c, err, "Failed to load user")
		return
	}

	user, err := resdto.FromAuthorizedUserView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}

// abortBind answers 400 and names the failing fields when the validator produced them.
func abortBind(c *gin.Context, err error) {
	var detail any = err.Error()
	if fields := validation.FieldErrors(err); fields != nil {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), "Invalid request", detail)
}
