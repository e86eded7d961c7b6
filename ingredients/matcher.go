package ingredients

import (
	"log"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"formulyst/report/report"
)

const (
	// DefaultThreshold is the minimum token-set similarity for a fuzzy match.
	DefaultThreshold = 0.86
	exactConfidence  = 0.99

	unmatchedLevel          = "Unknown"
	unmatchedRecommendation = "Suggest avoid"
)

// Matcher resolves ingredient tokens to hazard database entries.
type Matcher struct {
	db        *Database
	threshold float64
	logger    *log.Logger
}

// NewMatcher constructs a matcher. A threshold outside (0,1] uses DefaultThreshold.
func NewMatcher(db *Database, threshold float64, logger *log.Logger) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{db: db, threshold: threshold, logger: logger}
}

// CheckText splits and normalizes a raw ingredient label, then checks it.
func (m *Matcher) CheckText(text string) report.Report {
	return m.Check(Tokens(SplitIngredients(text)))
}

// Check resolves normalized tokens in order. Each entry is reported once, at
// its first match. Tokens that resolve to nothing, or to an entry already
// reported, produce an Unknown record carrying only the query.
func (m *Matcher) Check(tokens []string) report.Report {
	records := make([]report.IngredientRecord, 0, len(tokens))
	seen := make(map[string]struct{})
	var matched, missed int
	for _, tok := range tokens {
		entry, conf, alias, ok := m.lookupExact(tok)
		if !ok {
			entry, conf, alias, ok = m.lookupFuzzy(tok)
		}
		if ok {
			_, dup := seen[entry.ID]
			ok = !dup
		}
		if !ok {
			missed++
			records = append(records, unmatchedRecord(tok))
			continue
		}
		seen[entry.ID] = struct{}{}
		matched++
		records = append(records, matchedRecord(tok, alias, entry, conf))
	}
	m.logf("Checked %d ingredients: %d matched, %d unknown", len(tokens), matched, missed)
	summary := report.Summarize(records)
	return report.Report{Analysis: records, Summary: &summary}
}

func (m *Matcher) lookupExact(tok string) (Entry, float64, string, bool) {
	e, ok := m.db.Lookup(tok)
	if !ok {
		return Entry{}, 0, "", false
	}
	return e, exactConfidence, tok, true
}

func (m *Matcher) lookupFuzzy(tok string) (Entry, float64, string, bool) {
	var (
		bestAlias string
		bestScore float64
	)
	for _, alias := range m.db.keys {
		score := TokenSetSimilarity(tok, alias)
		if score > bestScore {
			bestAlias, bestScore = alias, score
		}
	}
	if bestAlias == "" || bestScore < m.threshold {
		return Entry{}, 0, "", false
	}
	e, ok := m.db.Lookup(bestAlias)
	if !ok {
		return Entry{}, 0, "", false
	}
	return e, bestScore, bestAlias, true
}

func matchedRecord(query, alias string, e Entry, conf float64) report.IngredientRecord {
	level := e.HazardLevel
	if level == "" {
		level = unmatchedLevel
	}
	rec := e.Recommendation
	if rec == "" {
		rec = unmatchedRecommendation
	}
	return report.IngredientRecord{
		ID:                  e.ID,
		Name:                e.Name,
		MatchedAlias:        alias,
		Query:               query,
		HazardLevel:         level,
		Categories:          cloneStrings(e.Categories),
		CASNumbers:          cloneStrings(e.CAS),
		Confidence:          math.Round(conf*100) / 100,
		Prop65Listed:        e.Prop65,
		EnvironmentalImpact: cloneImpact(e.EnvironmentalImpact),
		Reasons:             cloneStrings(e.Reasons),
		Recommendation:      rec,
		RegulatoryCA:        e.RegulatoryCA,
		RegulatoryEU:        e.RegulatoryEU,
		SourceRegulatory:    e.SourceRegulatory,
		SourceScientific:    e.SourceScientific,
		SourceConsumer:      e.SourceConsumer,
	}
}

func unmatchedRecord(query string) report.IngredientRecord {
	return report.IngredientRecord{
		Query:          query,
		HazardLevel:    unmatchedLevel,
		Recommendation: unmatchedRecommendation,
		Categories:     []string{},
		CASNumbers:     []string{},
	}
}

// TokenSetSimilarity compares a and b as sets of whitespace-separated words,
// returning a value in [0,1]. When one set contains the other the result is 1.
// Otherwise it is the best Levenshtein similarity among the shared words and
// the shared words extended by each side's remainder.
func TokenSetSimilarity(a, b string) float64 {
	ta, tb := wordSet(a), wordSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	var inter, onlyA, onlyB []string
	for w := range ta {
		if _, ok := tb[w]; ok {
			inter = append(inter, w)
		} else {
			onlyA = append(onlyA, w)
		}
	}
	for w := range tb {
		if _, ok := ta[w]; !ok {
			onlyB = append(onlyB, w)
		}
	}
	if len(inter) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 1
	}
	sect := joinSorted(inter)
	withA := strings.TrimSpace(sect + " " + joinSorted(onlyA))
	withB := strings.TrimSpace(sect + " " + joinSorted(onlyB))

	best := similarity(withA, withB)
	if sect != "" {
		best = math.Max(best, similarity(sect, withA))
		best = math.Max(best, similarity(sect, withB))
	}
	return best
}

func similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

func joinSorted(words []string) string {
	sort.Strings(words)
	return strings.Join(words, " ")
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneImpact(ei *report.EnvironmentalImpact) *report.EnvironmentalImpact {
	if ei == nil {
		return nil
	}
	c := *ei
	return &c
}

func (m *Matcher) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}
