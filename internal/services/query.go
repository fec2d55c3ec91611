package services

import (
	"math"
	"strconv"
	"strings"

	"handiva/internal/repositories"
)

// ParamState tells whether an optional numeric parameter was supplied and
// whether it parsed.
type ParamState int

const (
	ParamAbsent ParamState = iota
	ParamValid
	ParamInvalid
)

// NumberParam is a parsed optional numeric query parameter. Value is only
// meaningful when State is ParamValid.
type NumberParam struct {
	State ParamState
	Value float64
}

// ParseNumberParam parses raw as a finite decimal number. Blank input is
// absent; anything else that is not a finite number is invalid.
func ParseNumberParam(raw string) NumberParam {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NumberParam{State: ParamAbsent}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return NumberParam{State: ParamInvalid}
	}
	return NumberParam{State: ParamValid, Value: v}
}

// ProductQuery holds the raw list-products query parameters.
type ProductQuery struct {
	Material  string
	Category  string
	Telangana string
	Q         string
	MinPrice  string
	MaxPrice  string
}

// Filter builds the store predicate for q. Only the literal "true"
// enables the regional filter.
func (q ProductQuery) Filter() (repositories.ProductFilter, error) {
	filter := repositories.ProductFilter{
		Material:      q.Material,
		Category:      q.Category,
		TelanganaOnly: q.Telangana == "true",
		Search:        strings.TrimSpace(q.Q),
		Limit:         repositories.MaxListResults,
	}

	bounds := []struct {
		name string
		raw  string
		dst  **float64
	}{
		{"minPrice", q.MinPrice, &filter.MinPrice},
		{"maxPrice", q.MaxPrice, &filter.MaxPrice},
	}
	for _, b := range bounds {
		p := ParseNumberParam(b.raw)
		switch p.State {
		case ParamInvalid:
			return repositories.ProductFilter{}, invalid(b.name + " must be a number")
		case ParamValid:
			v := p.Value
			*b.dst = &v
		}
	}
	return filter, nil
}
