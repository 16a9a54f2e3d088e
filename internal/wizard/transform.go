package wizard

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvalidInput message used by every field transform
const InvalidInput = "Invalid input"

// DateLayout accepted by DateField
const DateLayout = "2006-01-02"

var errInvalidInput = errors.New(InvalidInput)

// StringField turns "" into nil
func StringField(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DateField parses yyyy-mm-dd as local midnight in loc; "" is nil
func DateField(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return nil, errInvalidInput
	}
	return &t, nil
}

// NumberField parses a decimal; "" is null
func NumberField(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, errInvalidInput
	}
	return decimal.NewNullDecimal(d), nil
}

// IntField parses a whole number; "" is nil
func IntField(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, errInvalidInput
	}
	return &n, nil
}

// IDField parses a positive id; "" is nil
func IDField(s string) (*uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return nil, errInvalidInput
	}
	id := uint(n)
	return &id, nil
}
