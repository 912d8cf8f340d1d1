package listing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PricingCheck compares the authored total due at signing with the sum of
// deposit, first month and last month.
type PricingCheck struct {
	Computed   decimal.Decimal `json:"computed"`
	Authored   decimal.Decimal `json:"authored"`
	Consistent bool            `json:"consistent"`
}

// Check parses the currency strings and reports whether the total adds up.
// Generation never depends on the result.
func (p Pricing) Check() (PricingCheck, error) {
	deposit, err := ParseAmount(p.Deposit)
	if err != nil {
		return PricingCheck{}, fmt.Errorf("deposit: %w", err)
	}
	first, err := ParseAmount(p.FirstMonth)
	if err != nil {
		return PricingCheck{}, fmt.Errorf("first month: %w", err)
	}
	last, err := ParseAmount(p.LastMonth)
	if err != nil {
		return PricingCheck{}, fmt.Errorf("last month: %w", err)
	}
	total, err := ParseAmount(p.TotalDueAtSigning)
	if err != nil {
		return PricingCheck{}, fmt.Errorf("total due at signing: %w", err)
	}

	sum := deposit.Add(first).Add(last)
	return PricingCheck{
		Computed:   sum,
		Authored:   total,
		Consistent: sum.Equal(total),
	}, nil
}

// ParseAmount parses a display amount such as "$1,500" or "$1,499.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	if clean == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount %q", s)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// FormatAmount renders d the way the listing authors write money: "$4,500".
func FormatAmount(d decimal.Decimal) string {
	neg := d.IsNegative()
	d = d.Abs()

	whole := d.Truncate(0).String()
	frac := ""
	if !d.Equal(d.Truncate(0)) {
		frac = d.StringFixed(2)[len(whole):]
	}

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	out := "$" + strings.Join(parts, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}
