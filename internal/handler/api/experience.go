package api

import (
	"net/http"
	"strconv"

	resdto "highway-booking/internal/handler/dto/response"
	"highway-booking/internal/handler/httperr"
	"highway-booking/internal/pkg/errs"
	"highway-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	q queries.ExperienceQueries
}

func NewExperienceHandler(q queries.ExperienceQueries) *ExperienceHandler {
	return &ExperienceHandler{q: q}
}

// @Summary List experiences
// @Description List experiences with their remaining total capacity
// @Tags experiences
// @Produce json
// @Success 200 {object} resdto.DataResponse[[]resdto.ExperienceSummaryResponse]
// @Failure 500 {object} httperr.Response
// @Router /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch experiences", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromExperienceSummaryViews(views)))
}

// @Summary Get experience
// @Description Get an experience with its slots
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} resdto.DataResponse[resdto.ExperienceResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidExperienceID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID", nil)
		case errs.Is(err, queries.ErrExperienceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Experience not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch experience", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromExperienceView(view)))
}
