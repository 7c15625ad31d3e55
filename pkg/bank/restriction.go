package bank

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AmountRange bounds a decimal field. Empty strings mean unbounded.
type AmountRange struct {
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}

// RateRange bounds a float field. Nil pointers mean unbounded.
type RateRange struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// Restriction is the validation rule set applied to account submissions. It is
// passed explicitly into parsing; there is no process-wide rule state. An empty
// Currencies list allows any currency.
type Restriction struct {
	Currencies []string    `yaml:"currencies"`
	Balance    AmountRange `yaml:"balance"`
	Interest   RateRange   `yaml:"interest"`
	Overdraft  AmountRange `yaml:"overdraft"`
}

// DefaultRestriction returns the built-in rule set: non-negative balances and
// overdrafts, interest rate in [0, 1], any currency.
func DefaultRestriction() Restriction {
	zero := 0.0
	one := 1.0
	return Restriction{
		Balance:   AmountRange{Min: "0"},
		Interest:  RateRange{Min: &zero, Max: &one},
		Overdraft: AmountRange{Min: "0"},
	}
}

// LoadRestriction reads a rule set from a YAML file.
func LoadRestriction(path string) (Restriction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Restriction{}, fmt.Errorf("failed to read restriction file: %w", err)
	}

	var r Restriction
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Restriction{}, fmt.Errorf("failed to parse restriction file: %w", err)
	}
	return r, nil
}

func (ar AmountRange) check(field string, v decimal.Decimal) error {
	if ar.Min != "" {
		min, err := decimal.NewFromString(ar.Min)
		if err != nil {
			return fmt.Errorf("bad %s minimum in restriction: %w", field, err)
		}
		if v.LessThan(min) {
			return &ValidationError{Field: field, Value: v.String(), Err: fmt.Errorf("below minimum %s", ar.Min)}
		}
	}
	if ar.Max != "" {
		max, err := decimal.NewFromString(ar.Max)
		if err != nil {
			return fmt.Errorf("bad %s maximum in restriction: %w", field, err)
		}
		if v.GreaterThan(max) {
			return &ValidationError{Field: field, Value: v.String(), Err: fmt.Errorf("above maximum %s", ar.Max)}
		}
	}
	return nil
}

func (rr RateRange) check(field string, v float64) error {
	if rr.Min != nil && v < *rr.Min {
		return &ValidationError{Field: field, Value: fmt.Sprintf("%g", v), Err: fmt.Errorf("below minimum %g", *rr.Min)}
	}
	if rr.Max != nil && v > *rr.Max {
		return &ValidationError{Field: field, Value: fmt.Sprintf("%g", v), Err: fmt.Errorf("above maximum %g", *rr.Max)}
	}
	return nil
}

func (r Restriction) checkCurrency(currency string) error {
	if len(r.Currencies) == 0 {
		return nil
	}
	if !lo.Contains(r.Currencies, currency) {
		return &ValidationError{Field: "currencyType", Value: currency, Err: fmt.Errorf("not one of %v", r.Currencies)}
	}
	return nil
}
