package promo

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidKind       = errors.New("invalid promo kind")
	ErrNegativeValue     = errors.New("promo value cannot be negative")
	ErrPercentOutOfRange = errors.New("percentage promo must be between 0 and 100")
)

type Kind string

const (
	KindPercentage Kind = "PERCENT"
	KindFlat       Kind = "FLAT"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFlat:
		return true
	default:
		return false
	}
}

// Rule is a discount policy. Percentage values are 0-100, flat values are currency units.
type Rule struct {
	kind  Kind
	value decimal.Decimal
}

func NewRule(kind Kind, value decimal.Decimal) (Rule, error) {
	if !kind.IsValid() {
		return Rule{}, ErrInvalidKind
	}
	if value.IsNegative() {
		return Rule{}, ErrNegativeValue
	}
	if kind == KindPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return Rule{}, ErrPercentOutOfRange
	}
	return Rule{kind: kind, value: value}, nil
}

func MustRule(kind Kind, value decimal.Decimal) Rule {
	r, err := NewRule(kind, value)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rule) Kind() Kind             { return r.kind }
func (r Rule) Value() decimal.Decimal { return r.value }
func (r Rule) IsPercentage() bool     { return r.kind == KindPercentage }
