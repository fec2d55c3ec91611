package repositories

import (
	"strings"

	"handiva/internal/models"
)

// MaxListResults caps the number of products returned by a single list query.
const MaxListResults = 100

// ProductFilter is a conjunction of product predicates. Zero fields match
// everything.
type ProductFilter struct {
	Material      string
	Category      string
	TelanganaOnly bool
	Search        string
	MinPrice      *float64
	MaxPrice      *float64
	// Limit is clamped to MaxListResults; zero means MaxListResults.
	Limit int
}

// EffectiveLimit returns the row cap the backends must apply.
func (f ProductFilter) EffectiveLimit() int {
	if f.Limit <= 0 || f.Limit > MaxListResults {
		return MaxListResults
	}
	return f.Limit
}

// Matches evaluates the filter against p in process. Search is a
// case-insensitive substring test over the text fields.
func (f ProductFilter) Matches(p models.Product) bool {
	if f.Material != "" && p.Material != f.Material {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.TelanganaOnly && !p.Telangana {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" {
		return containsFold(searchText(p), f.Search)
	}
	return true
}

func searchText(p models.Product) []string {
	fields := []string{p.Title, p.Description, p.Material, p.Category}
	return append(fields, p.Tags...)
}

func containsFold(fields []string, term string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
