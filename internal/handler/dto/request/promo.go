package request

import "github.com/shopspring/decimal"

type ValidatePromoRequest struct {
	// pointer so only a missing or null code is rejected; blank codes are simply not valid
	Code *string `json:"code" binding:"required"`
	// optional subtotal; when present the response previews the discount
	Amount *decimal.Decimal `json:"amount,omitempty"`
}
