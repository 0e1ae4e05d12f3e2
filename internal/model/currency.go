package model

// Currency tags a wallet or transaction amount. The zero value means unset.
// Amounts are never converted between currencies.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	CNY Currency = "CNY"
	GBP Currency = "GBP"
)

// ParseCurrency maps a wire value onto the supported set.
func ParseCurrency(s string) (Currency, bool) {
	switch c := Currency(s); c {
	case USD, EUR, CNY, GBP:
		return c, true
	}
	return "", false
}
