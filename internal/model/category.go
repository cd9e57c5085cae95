package model

// Uncategorized is the default label applied when the oracle supplied no
// usable category for a row.
const Uncategorized = "Uncategorized"

// Categories is the closed set of labels the oracle may assign. Labels
// outside this set are treated as absent so chart cardinality stays bounded.
var Categories = []string{
	"Food & Dining",
	"Essentials",
	"Academics",
	"Luxury & Entertainment",
	"Transportation",
	"Health & Wellness",
}

// ValidCategory reports whether label is one of the fixed categories.
func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// CategoryMap maps transaction IDs to category labels. After merging,
// every canonical row resolves to exactly one label.
type CategoryMap map[string]string
