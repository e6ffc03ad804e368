//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.Mark(errs.New("no token"), errs.ErrUnauthenticated), http.StatusUnauthorized},
		{errs.Mark(errs.New("not yours"), errs.ErrForbidden), http.StatusForbidden},
		{errs.Mark(errs.New("gone"), errs.ErrNotFound), http.StatusNotFound},
		{errs.Mark(errs.New("checkIn: bad"), errs.ErrInvalidInput), http.StatusBadRequest},
		{errs.Mark(errs.New("taken"), errs.ErrConflict), http.StatusConflict},
		{errs.Mark(errs.New("db down"), errs.ErrStorageFailure), http.StatusInternalServerError},
		{errs.New("unclassified"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, httperr.StatusOf(c.err), c.err.Error())
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client error carries detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/x", nil)

		httperr.Abort(c, errs.Mark(errs.New("checkOut: date must be YYYY-MM-DD or RFC3339"), errs.ErrInvalidInput), "Invalid booking")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid booking", body["error"].(map[string]any)["message"])
		assert.Contains(t, body["detail"], "checkOut")
	})

	t.Run("server error is generic", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

		httperr.Abort(c, errs.Mark(errs.New("pq: connection refused"), errs.ErrStorageFailure), "Failed to load")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
