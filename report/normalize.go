package report

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares free text for searching: NFKC folds full-width and
// compatibility forms, control characters are dropped and whitespace runs
// collapse to a single space.
func NormalizeText(text string) string {
	folded := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, norm.NFKC.String(text))
	return strings.Join(strings.Fields(folded), " ")
}

// Normalize builds the presentation view of a single record.
func Normalize(r IngredientRecord) NormalizedRecord {
	env := r.environment()
	return NormalizedRecord{
		Record:            r,
		AquaticToxicity:   ParseLevel(env.AquaticToxicity),
		Bioaccumulation:   ParseLevel(env.Bioaccumulation),
		Persistence:       ParseLevel(env.Persistence),
		HealthWeight:      HealthWeight(r),
		EnvironmentWeight: EnvironmentWeight(r),
		ConfidencePercent: int(math.Round(r.Confidence * 100)),
		Sources:           sources(r),
	}
}

// NormalizeAll normalizes every record, preserving order.
func NormalizeAll(records []IngredientRecord) []NormalizedRecord {
	out := make([]NormalizedRecord, len(records))
	for i, r := range records {
		out[i] = Normalize(r)
	}
	return out
}

func sources(r IngredientRecord) []string {
	var out []string
	for _, s := range []string{r.SourceRegulatory, r.SourceScientific, r.SourceConsumer} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
