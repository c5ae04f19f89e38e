package booking

import (
	"highway-booking/internal/domain/promo"

	"github.com/shopspring/decimal"
)

// Percentage discounts round half-up to whole currency units.
const discountRoundingPlaces = 0

var hundred = decimal.NewFromInt(100)

// Quote is the authoritative price breakdown of one booking.
type Quote struct {
	Amount      decimal.Decimal
	Discount    decimal.Decimal
	FinalAmount decimal.Decimal
	// nil when no valid promo contributed
	PromoCode *string
}

type PriceCalculator interface {
	Quote(pricePerPerson decimal.Decimal, people PeopleCount, promoCode *string) (Quote, error)
}

type DefaultPriceCalculator struct {
	promos *promo.Evaluator
}

func NewDefaultPriceCalculator(promos *promo.Evaluator) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{promos: promos}
}

func (pc *DefaultPriceCalculator) Quote(pricePerPerson decimal.Decimal, people PeopleCount, promoCode *string) (Quote, error) {
	if !pricePerPerson.IsPositive() {
		return Quote{}, ErrNonPositiveUnitFee
	}

	amount := pricePerPerson.Mul(decimal.NewFromInt(int64(people)))
	discount := decimal.Zero
	var applied *string

	if promoCode != nil {
		if rule, ok := pc.promos.Lookup(*promoCode); ok {
			discount = DiscountFor(amount, rule)
			code := promo.NormalizeCode(*promoCode)
			applied = &code
		}
	}

	return Quote{
		Amount:      amount,
		Discount:    discount,
		FinalAmount: FinalAmount(amount, discount),
		PromoCode:   applied,
	}, nil
}

// DiscountFor is not capped by amount; FinalAmount does the clamping.
func DiscountFor(amount decimal.Decimal, rule promo.Rule) decimal.Decimal {
	if rule.IsPercentage() {
		return amount.Mul(rule.Value()).Div(hundred).Round(discountRoundingPlaces)
	}
	return rule.Value()
}

func FinalAmount(amount, discount decimal.Decimal) decimal.Decimal {
	final := amount.Sub(discount)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
