package api

import (
	"net/http"

	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam parses a path parameter and answers 400 when it is not a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), "Invalid "+name, gin.H{name: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
