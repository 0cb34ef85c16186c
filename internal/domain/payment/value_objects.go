package payment

import "strings"

// Amount is a payment amount in minor currency units.
type Amount struct {
	cents int64
}

func NewAmount(cents int64) (Amount, error) {
	if cents < 0 {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{cents: cents}, nil
}

func (a Amount) Cents() int64 { return a.cents }

type Currency struct {
	code string
}

func NewCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return Currency{}, ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return Currency{}, ErrInvalidCurrency
		}
	}
	return Currency{code: code}, nil
}

func (c Currency) String() string { return c.code }
