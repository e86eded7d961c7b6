package report

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical environmental labels.
const (
	LabelHigh     = "High"
	LabelModerate = "Moderate"
	LabelLow      = "Low"
	LabelUnknown  = "Unknown"
	LabelVariable = "Variable"
)

var vocabulary = [...]string{LabelHigh, LabelModerate, LabelLow, LabelUnknown, LabelVariable}

// Vocabulary returns the recognized environmental labels in display order.
// The slice is a fresh copy on every call.
func Vocabulary() []string {
	return append([]string(nil), vocabulary[:]...)
}

// The token is anchored at the start only, so "Lower" still yields "Low".
var levelPattern = regexp.MustCompile(`(?i)^(high|moderate|low|unknown|variable)\s*(?:\((.*)\))?`)

// ParseLevel splits a composite field such as "Moderate (toxic to fish)" into
// its label and note. Empty input yields Unknown; input that does not start
// with a recognized label is returned verbatim as the label.
func ParseLevel(s string) ParsedLevel {
	if s == "" {
		return ParsedLevel{Label: LabelUnknown}
	}
	m := levelPattern.FindStringSubmatch(s)
	if m == nil {
		return ParsedLevel{Label: s}
	}
	return ParsedLevel{Label: canonicalLabel(m[1]), Note: m[2]}
}

func canonicalLabel(token string) string {
	return cases.Title(language.English).String(strings.ToLower(token))
}
