package api

import (
	"errors"
	"net/http"

	reqdto "fleetops/internal/handler/dto/request"
	resdto "fleetops/internal/handler/dto/response"
	"fleetops/internal/handler/httperr"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExtensionHandler struct {
	extensions commands.ExtensionCommands
}

func NewExtensionHandler(extensions commands.ExtensionCommands) *ExtensionHandler {
	return &ExtensionHandler{extensions: extensions}
}

// @Summary Preview extension conflicts
// @Description Run conflict detection for a proposed extension interval without writing anything
// @Tags extensions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.PreviewExtensionRequest true "Proposed interval"
// @Success 200 {object} resdto.ConflictReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/extensions/preview [post]
func (h *ExtensionHandler) PreviewExtension(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	var req reqdto.PreviewExtensionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	report, err := h.extensions.Preview(c.Request.Context(), bookingID, req.Start, req.End, req.MaintenanceSlot)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConflictReport(report))
}

// @Summary Confirm extension
// @Description Confirm an extension: conflict check, invoice, preparation task and calendar block in one transaction
// @Tags extensions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmExtensionRequest true "Extension request"
// @Success 201 {object} resdto.ConfirmExtensionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.ConflictReportResponse
// @Router /bookings/{id}/extensions [post]
func (h *ExtensionHandler) ConfirmExtension(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	var req reqdto.ConfirmExtensionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.extensions.Confirm(c.Request.Context(), bookingID, req.ToInput())
	if err != nil {
		var conflict *commands.ConflictError
		switch {
		case errors.As(err, &conflict):
			// A blocking conflict is a structured outcome, not an error envelope.
			c.JSON(http.StatusConflict, resdto.FromConflictReport(&conflict.Report))
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid extension parameters")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmExtensionResult(result))
}

// @Summary Cancel extension
// @Description Cancel an extension; the record is retained and its invoice voided. Cancelling twice is a no-op.
// @Tags extensions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param extensionId path string true "Extension ID"
// @Success 200 {object} resdto.CancelExtensionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/extensions/{extensionId}/cancel [post]
func (h *ExtensionHandler) CancelExtension(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}
	extensionID, err := uuid.Parse(c.Param("extensionId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid extension ID format")
		return
	}

	result, err := h.extensions.Cancel(c.Request.Context(), bookingID, extensionID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrExtensionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Extension not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelExtensionResponse{
		Cancelled:        !result.AlreadyCancelled,
		AlreadyCancelled: result.AlreadyCancelled,
	})
}
