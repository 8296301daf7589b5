package intake

import (
	"errors"
	"strconv"
	"strings"
)

// Field validation errors. Each maps to a localized re-prompt; none of them
// advances the flow or mutates the draft.
var (
	ErrModelEmpty       = errors.New("model must not be empty")
	ErrYearFormat       = errors.New("year must be 4 digits")
	ErrYearRange        = errors.New("year out of range")
	ErrPriceInvalid     = errors.New("price must be a positive integer")
	ErrMileageInvalid   = errors.New("mileage must be a non-negative integer")
	ErrConditionInvalid = errors.New("condition must be an integer from 1 to 10")
)

const (
	minYear = 1990
	maxYear = 2025
)

// ParseModel requires a non-empty trimmed string.
func ParseModel(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrModelEmpty
	}
	return text, nil
}

// ParseYear accepts exactly 4 ASCII digits within [1990, 2025]. Format and
// range failures are distinct so the re-prompt can explain which rule broke.
func ParseYear(text string) (int, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 {
		return 0, ErrYearFormat
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, ErrYearFormat
		}
	}
	year, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrYearFormat
	}
	if year < minYear || year > maxYear {
		return 0, ErrYearRange
	}
	return year, nil
}

// ParsePrice accepts a strictly positive integer.
func ParsePrice(text string) (int64, error) {
	price, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || price <= 0 {
		return 0, ErrPriceInvalid
	}
	return price, nil
}

// ParseMileage accepts a non-negative integer.
func ParseMileage(text string) (int64, error) {
	mileage, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || mileage < 0 {
		return 0, ErrMileageInvalid
	}
	return mileage, nil
}

// ParseLocation accepts any trimmed string, including empty.
func ParseLocation(text string) string {
	return strings.TrimSpace(text)
}

// ParseCondition accepts an integer in [1, 10].
func ParseCondition(text string) (int, error) {
	condition, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || condition < 1 || condition > 10 {
		return 0, ErrConditionInvalid
	}
	return condition, nil
}

// NormalizePhone strips everything except digits and '+'. It never fails; an
// empty result is passed through as-is.
func NormalizePhone(text string) string {
	var b strings.Builder
	for _, c := range text {
		if (c >= '0' && c <= '9') || c == '+' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
