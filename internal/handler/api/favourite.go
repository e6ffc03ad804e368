package api

import (
	"net/http"

	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavouriteHandler struct {
	cmds commands.FavouriteCommands
	q    queries.FavouriteQueries
}

func NewFavouriteHandler(cmds commands.FavouriteCommands, q queries.FavouriteQueries) *FavouriteHandler {
	return &FavouriteHandler{cmds: cmds, q: q}
}

// @Summary List favourites
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FavouriteResponse
// @Failure 401 {object} httperr.Response
// @Router /favourites [get]
func (h *FavouriteHandler) List(c *gin.Context) {
	userID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load favourites")
		return
	}

	res, err := resdto.FromFavouriteViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add favourite
// @Tags favourites
// @Security BearerAuth
// @Param listingId path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /favourites/{listingId} [post]
func (h *FavouriteHandler) Add(c *gin.Context) {
	userID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	listingID, ok := uuidParam(c, "listingId")
	if !ok {
		return
	}

	if err := h.cmds.AddFavourite(c.Request.Context(), userID, listingID); err != nil {
		httperr.Abort(c, err, "Add favourite failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove favourite
// @Tags favourites
// @Security BearerAuth
// @Param listingId path string true "Listing ID"
// @Success 204 "No Content"
// @Router /favourites/{listingId} [delete]
func (h *FavouriteHandler) Remove(c *gin.Context) {
	userID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	listingID, ok := uuidParam(c, "listingId")
	if !ok {
		return
	}

	if err := h.cmds.RemoveFavourite(c.Request.Context(), userID, listingID); err != nil {
		httperr.Abort(c, err, "Remove favourite failed")
		return
	}
	c.Status(http.StatusNoContent)
}
