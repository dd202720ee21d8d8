package enums

import "fmt"

// Currency represents supported monetary denominations.
type Currency string

const (
	CurrencyINR Currency = "INR"
)

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	return c == CurrencyINR
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	if Currency(value) == CurrencyINR {
		return CurrencyINR, nil
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
