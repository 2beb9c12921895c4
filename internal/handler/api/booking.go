package api

import (
	"errors"
	"net/http"

	reqdto "fleetops/internal/handler/dto/request"
	resdto "fleetops/internal/handler/dto/response"
	"fleetops/internal/handler/httperr"
	"fleetops/internal/infra"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/usecase/commands"
	"fleetops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	transitions commands.TransitionCommands
	views       queries.BookingQueries
}

func NewBookingHandler(transitions commands.TransitionCommands, views queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		transitions: transitions,
		views:       views,
	}
}

// @Summary Request status transition
// @Description Move a booking one stage forward through the operational pipeline
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionRequest true "Transition request"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/transition [post]
func (h *BookingHandler) RequestTransition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	var req reqdto.TransitionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.transitions.RequestTransition(c.Request.Context(), id, req.TargetStatus())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown target status")
		case errors.Is(err, errs.ErrIllegalTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Transition not allowed from the current status")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Get booking
// @Description Get a booking with its extensions, invoices, history and timeline
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	view, err := h.views.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
