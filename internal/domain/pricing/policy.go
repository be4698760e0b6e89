package pricing

import (
	"errors"
	"fmt"
	"strings"

	"bidboard/internal/domain/entities"
)

// NegativePolicy decides what happens to negative qty, rate, margin or tax inputs.
type NegativePolicy string

const (
	// NegativeAllow stores negative values as given.
	NegativeAllow NegativePolicy = "allow"
	// NegativeReject fails the mutation.
	NegativeReject NegativePolicy = "reject"
	// NegativeClamp stores negative values as 0.
	NegativeClamp NegativePolicy = "clamp"
)

var ErrNegativeValue = errors.New("negative value not allowed")

// ParseNegativePolicy parses a config value. Empty means allow.
func ParseNegativePolicy(raw string) (NegativePolicy, error) {
	switch p := NegativePolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "", NegativeAllow:
		return NegativeAllow, nil
	case NegativeReject, NegativeClamp:
		return p, nil
	default:
		return NegativeAllow, fmt.Errorf("unknown negative values policy %q", raw)
	}
}

// Value applies the policy to a single optional input. Nil passes through.
func (p NegativePolicy) Value(field string, v *float64) (*float64, error) {
	if v == nil || *v >= 0 {
		return v, nil
	}
	switch p {
	case NegativeReject:
		return nil, fmt.Errorf("%w: %s=%v", ErrNegativeValue, field, *v)
	case NegativeClamp:
		zero := 0.0
		return &zero, nil
	default:
		return v, nil
	}
}

// LineItemFields applies the policy to qty and rate.
func (p NegativePolicy) LineItemFields(f entities.LineItemFields) (entities.LineItemFields, error) {
	var err error
	if f.Qty, err = p.Value("qty", f.Qty); err != nil {
		return entities.LineItemFields{}, err
	}
	if f.Rate, err = p.Value("rate", f.Rate); err != nil {
		return entities.LineItemFields{}, err
	}
	return f, nil
}
