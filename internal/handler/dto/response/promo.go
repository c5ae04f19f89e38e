package response

import (
	"highway-booking/internal/pkg/ptr"
	"highway-booking/internal/usecase/queries"
)

type PromoValidationResponse struct {
	Valid       bool     `json:"valid"`
	Type        string   `json:"type,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Message     string   `json:"message,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	FinalAmount *float64 `json:"finalAmount,omitempty"`
}

func FromPromoValidationView(v *queries.PromoValidationView) PromoValidationResponse {
	if !v.Valid {
		return PromoValidationResponse{Valid: false, Message: v.Message}
	}
	resp := PromoValidationResponse{
		Valid: true,
		Type:  v.Type,
		Value: ptr.To(v.Value.InexactFloat64()),
	}
	if v.Discount != nil && v.FinalAmount != nil {
		resp.Discount = ptr.To(v.Discount.InexactFloat64())
		resp.FinalAmount = ptr.To(v.FinalAmount.InexactFloat64())
	}
	return resp
}
