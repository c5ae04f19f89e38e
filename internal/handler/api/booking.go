package api

import (
	"net/http"

	reqdto "highway-booking/internal/handler/dto/request"
	resdto "highway-booking/internal/handler/dto/response"
	"highway-booking/internal/handler/httperr"
	"highway-booking/internal/pkg/errs"
	"highway-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Create booking
// @Description Reserve seats on a slot and record the booking. The amount is always computed server-side.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Optional UUID; retries with the same key replay the first response"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.DataResponse[resdto.BookingResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", validationDetail(err))
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		case errs.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot not found", nil)
		case errs.Is(err, commands.ErrExperienceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Experience not found", nil)
		case errs.Is(err, commands.ErrInsufficientCapacity):
			httperr.AbortWithError(c, http.StatusConflict, err, "Selected slot is sold out or insufficient seats", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create booking", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.Wrap(resdto.FromReserveResult(result)))
}
