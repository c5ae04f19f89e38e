package api

import (
	"net/http"

	reqdto "highway-booking/internal/handler/dto/request"
	resdto "highway-booking/internal/handler/dto/response"
	"highway-booking/internal/handler/httperr"
	"highway-booking/internal/pkg/errs"
	"highway-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNonPositiveAmount = errs.New("amount must be positive")

type PromoHandler struct {
	q queries.PromoQueries
}

func NewPromoHandler(q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{q: q}
}

// @Summary Validate promo code
// @Description Check a promo code. With an amount, the response also previews the discount.
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo code"
// @Success 200 {object} resdto.DataResponse[resdto.PromoValidationResponse]
// @Failure 400 {object} httperr.Response
// @Router /promo/validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", validationDetail(err))
		return
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		httperr.AbortWithError(c, http.StatusBadRequest, errNonPositiveAmount, "Invalid payload",
			[]fieldError{{Field: "amount", Rule: "gt", Param: "0"}})
		return
	}

	view := h.q.Validate(c.Request.Context(), *req.Code, req.Amount)
	c.JSON(http.StatusOK, resdto.Wrap(resdto.FromPromoValidationView(view)))
}
