package queries

//go:generate mockgen -source=promo.go -destination=../../../tests/mock/queries/promo.go -package=queriesmock

import (
	"context"

	"highway-booking/internal/domain/booking"
	"highway-booking/internal/domain/promo"

	"github.com/shopspring/decimal"
)

type PromoQueries interface {
	Validate(ctx context.Context, code string, amount *decimal.Decimal) *PromoValidationView
}

type promoQueriesImpl struct {
	evaluator *promo.Evaluator
}

func NewPromoQueries(evaluator *promo.Evaluator) PromoQueries {
	return &promoQueriesImpl{evaluator: evaluator}
}

// Validate never touches the store; unknown codes are a normal result, not an error.
// With an amount it also previews the discount using the checkout rules.
func (q *promoQueriesImpl) Validate(_ context.Context, code string, amount *decimal.Decimal) *PromoValidationView {
	v := q.evaluator.Validate(code)
	view := &PromoValidationView{
		Valid:   v.Valid,
		Code:    v.Code,
		Type:    string(v.Type),
		Value:   v.Value,
		Message: v.Message,
	}
	if !v.Valid || amount == nil {
		return view
	}

	rule, _ := q.evaluator.Lookup(code)
	discount := booking.DiscountFor(*amount, rule)
	final := booking.FinalAmount(*amount, discount)
	view.Discount = &discount
	view.FinalAmount = &final
	return view
}
