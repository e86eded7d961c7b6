package report

import "strings"

// Filter returns the records passing both the hazard and search predicates,
// in their original order. The query and the searched fields are compared
// after NormalizeText. The input slice is not modified.
func Filter(records []IngredientRecord, opts FilterOptions) []IngredientRecord {
	q := strings.ToLower(NormalizeText(opts.Query))
	out := make([]IngredientRecord, 0, len(records))
	for _, r := range records {
		if opts.OnlyHazardous && !IsHazardous(r) {
			continue
		}
		if !matchesQuery(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// IsHazardous reports whether the hazard level contains "high" or "medium",
// case-insensitively. Substring matching means "High-suspected" also passes.
func IsHazardous(r IngredientRecord) bool {
	level := strings.ToLower(r.HazardLevel)
	return strings.Contains(level, "high") || strings.Contains(level, "medium")
}

// matchesQuery expects q already normalized and lower-cased.
func matchesQuery(r IngredientRecord, q string) bool {
	if q == "" {
		return true
	}
	if containsFold(r.Name, q) || containsFold(r.MatchedAlias, q) {
		return true
	}
	for _, c := range r.Categories {
		if containsFold(c, q) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerQuery string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(NormalizeText(s)), lowerQuery)
}
