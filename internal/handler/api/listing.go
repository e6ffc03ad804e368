package api

import (
	"net/http"
	"strconv"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary List listings
// @Description Newest first, keyset paginated
// @Tags listings
// @Produce json
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} resdto.ListingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to load listings")
		return
	}

	items, err := resdto.FromListingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	page := resdto.ListingPageResponse{Items: items}
	if next != nil {
		page.NextCursor = next.After
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Listing not found")
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary List my listings
// @Tags host
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /host/listings [get]
func (h *ListingHandler) HostList(c *gin.Context) {
	hostID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}

	views, err := h.q.ListByHost(c.Request.Context(), hostID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load listings")
		return
	}

	items, err := resdto.FromListingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create listing
// @Tags host
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /host/listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	hostID, role, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}

	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.cmds.CreateListing(c.Request.Context(), hostID, role, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Create listing failed")
		return
	}
	h.respond(c, http.StatusCreated, view)
}

// @Summary Update listing
// @Description Partial update of one of the caller's listings
// @Tags host
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Fields to change"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /host/listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	hostID, role, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.cmds.UpdateListing(c.Request.Context(), hostID, role, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Update listing failed")
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Delete listing
// @Description Removes the listing and every favourite pointing at it. Reservations keep their snapshot.
// @Tags host
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /host/listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	hostID, role, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteListing(c.Request.Context(), hostID, role, id); err != nil {
		httperr.Abort(c, err, "Delete listing failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ListingHandler) respond(c *gin.Context, status int, view *queries.ListingView) {
	res, err := resdto.FromListingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
