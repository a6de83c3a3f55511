package request

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	mobileRegexPattern = regexp.MustCompile(`^\d{10}$`)

	errInvalidMobile     = errors.New("mobile number must be exactly 10 digits")
	errNonPositiveAmount = errors.New("amount must be greater than zero")
	errNegativeAmount    = errors.New("amount must not be negative")
)

func validMobile(value interface{}) error {
	s, _ := value.(string)
	if !mobileRegexPattern.MatchString(s) {
		return errInvalidMobile
	}
	return nil
}

func positiveAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return errNonPositiveAmount
	}
	return nil
}

func nonNegativeAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return errNegativeAmount
	}
	return nil
}
