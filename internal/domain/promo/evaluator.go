package promo

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CodeSave10  = "SAVE10"
	CodeFlat100 = "FLAT100"

	invalidCodeMessage = "Invalid promo code"
)

// Table maps an uppercased code to its rule.
type Table map[string]Rule

func DefaultTable() Table {
	return Table{
		CodeSave10:  MustRule(KindPercentage, decimal.NewFromInt(10)),
		CodeFlat100: MustRule(KindFlat, decimal.NewFromInt(100)),
	}
}

// With returns a copy of the table with code registered.
func (t Table) With(code string, rule Rule) Table {
	out := make(Table, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[NormalizeCode(code)] = rule
	return out
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Validation struct {
	Valid   bool
	Code    string
	Type    Kind
	Value   decimal.Decimal
	Message string
}

type Evaluator struct {
	table Table
}

func NewEvaluator(table Table) *Evaluator {
	return &Evaluator{table: table}
}

func NewDefaultEvaluator() *Evaluator {
	return NewEvaluator(DefaultTable())
}

// Lookup is case-insensitive; an empty or unknown code is not valid.
func (e *Evaluator) Lookup(code string) (Rule, bool) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return Rule{}, false
	}
	r, ok := e.table[normalized]
	return r, ok
}

func (e *Evaluator) Validate(code string) Validation {
	rule, ok := e.Lookup(code)
	if !ok {
		return Validation{Valid: false, Message: invalidCodeMessage}
	}
	return Validation{
		Valid: true,
		Code:  NormalizeCode(code),
		Type:  rule.Kind(),
		Value: rule.Value(),
	}
}
