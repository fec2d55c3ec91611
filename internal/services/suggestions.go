package services

import "strings"

const maxSuggestions = 6

var craftSuggestions = []string{
	"Wool Shawl",
	"Handloom Saree",
	"Terracotta Pot",
	"Jute Bag",
	"Knitted Sweater",
}

// Suggest returns the craft names containing q, ignoring case, in their
// fixed order.
func Suggest(q string) []string {
	q = strings.ToLower(q)
	out := make([]string, 0, maxSuggestions)
	for _, s := range craftSuggestions {
		if strings.Contains(strings.ToLower(s), q) {
			out = append(out, s)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
