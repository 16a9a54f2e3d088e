package presenter

import (
	"strconv"
	"time"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when an amount carries no currency
const DefaultCurrency = money.USD

var numberLiterals = []string{
	"Zero", "One", "Two", "Three", "Four", "Five",
	"Six", "Seven", "Eight", "Nine", "Ten",
}

// NumberToLiteral spells out 0..10; larger values are printed as digits
func NumberToLiteral(n *int) string {
	switch {
	case n == nil:
		return "N/A"
	case *n < 0:
		return "Negative"
	case *n > 10:
		return strconv.Itoa(*n)
	}
	return numberLiterals[*n]
}

// FormatMoney renders amount in currency, e.g. "$1,200.50". Null amounts render as "".
func FormatMoney(amount decimal.NullDecimal, currency *string) string {
	if !amount.Valid {
		return ""
	}
	code := DefaultCurrency
	if currency != nil && *currency != "" {
		code = *currency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.Decimal.StringFixed(2) + " " + code
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := amount.Decimal.Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatDate formats t with layout; nil renders as ""
func FormatDate(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	if layout == "" {
		layout = "2006-01-02"
	}
	return t.Format(layout)
}

// RealEstateTypeLabel display name of a property type, "" when unset
func RealEstateTypeLabel(t domain.RealEstateType) string {
	return t.Label()
}
