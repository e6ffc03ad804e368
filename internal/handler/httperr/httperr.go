package httperr

import (
	"log/slog"
	"net/http"

	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category to its HTTP status.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes a categorised use case error. Client errors carry the error text
// as detail; server errors are logged and answered generically.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), msg,
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, msg, err.Error())
}
