package acts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	thousandSeparator = " "
	decimalSeparator  = ","
)

var numeric = strings.NewReplacer(" ", "", " ", "", ",", ".")

// ParseNumber reads a spreadsheet numeric cell: embedded spaces and
// non-breaking spaces are stripped, a decimal comma is accepted.
func ParseNumber(s string) (decimal.Decimal, error) {
	v := numeric.Replace(strings.TrimSpace(s))
	if v == "" {
		return decimal.Zero, fmt.Errorf("empty numeric value")
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric value '%s'", s)
	}

	return d, nil
}

// Money rounds an amount half-up to two decimal places.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatMoney renders an amount with a space thousands separator and a
// decimal comma, e.g. 12345.678 -> "12 345,68".
func FormatMoney(d decimal.Decimal) string {
	s := Money(d).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	integer, fraction, _ := strings.Cut(s, ".")

	groups := []string{}
	for len(integer) > 3 {
		groups = append([]string{integer[len(integer)-3:]}, groups...)
		integer = integer[:len(integer)-3]
	}
	groups = append([]string{integer}, groups...)

	return sign + strings.Join(groups, thousandSeparator) + decimalSeparator + fraction
}
