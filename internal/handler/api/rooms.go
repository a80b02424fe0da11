package api

import (
	"net/http"

	resdto "sweethomes-api/internal/handler/dto/response"
	"sweethomes-api/internal/handler/httperr"
	"sweethomes-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomsHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomsHandler(roomQueries queries.RoomQueries) *RoomsHandler {
	return &RoomsHandler{roomQueries: roomQueries}
}

// @Summary List rooms
// @Description List the full room catalog
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 503 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomsHandler) ListRooms(c *gin.Context) {
	records, err := h.roomQueries.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to load rooms. Please try again.", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(records))
}

// @Summary List room type summaries
// @Description Aggregate available rooms per category with the lowest nightly rate
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomSummaryResponse
// @Failure 503 {object} httperr.Response
// @Router /rooms/summaries [get]
func (h *RoomsHandler) ListSummaries(c *gin.Context) {
	summaries, err := h.roomQueries.ListSummaries(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to load rooms. Please try again.", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaries(summaries))
}
