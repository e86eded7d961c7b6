package report

import (
	"math"
	"strings"
)

// Health weight table keyed by the exact hazard level spelling.
var healthWeights = map[string]float64{
	"High":   1.0,
	"Medium": 0.6,
	"Low":    0.3,
}

// Environment weight table keyed by canonical label.
var environmentWeights = map[string]float64{
	LabelHigh:     1.0,
	LabelModerate: 0.6,
	LabelLow:      0.2,
	LabelUnknown:  0.5,
	LabelVariable: 0.6,
}

const (
	defaultHealthWeight      = 0.3
	defaultEnvironmentWeight = 0.5
	endocrineBump            = 0.15
	prop65Bump               = 0.2
)

// HealthWeight returns the clamped per-record health score in [0,1].
func HealthWeight(r IngredientRecord) float64 {
	base, ok := healthWeights[r.HazardLevel]
	if !ok {
		base = defaultHealthWeight
	}
	if hasEndocrineCategory(r.Categories) {
		base += endocrineBump
	}
	if r.Prop65Listed {
		base += prop65Bump
	}
	return clamp01(base)
}

// EnvironmentWeight returns the mean of the three mapped environmental labels.
func EnvironmentWeight(r IngredientRecord) float64 {
	env := r.environment()
	a := environmentLabelWeight(ParseLevel(env.AquaticToxicity).Label)
	b := environmentLabelWeight(ParseLevel(env.Bioaccumulation).Label)
	c := environmentLabelWeight(ParseLevel(env.Persistence).Label)
	return (a + b + c) / 3
}

// HealthRiskScore aggregates per-record health weights into a 0-100 score.
// An empty list scores 0.
func HealthRiskScore(records []IngredientRecord) int {
	return aggregate(records, HealthWeight)
}

// EnvironmentRiskScore aggregates per-record environment weights into a 0-100 score.
// An empty list scores 0.
func EnvironmentRiskScore(records []IngredientRecord) int {
	return aggregate(records, EnvironmentWeight)
}

// Score computes both aggregate scores.
func Score(records []IngredientRecord) ScoreResult {
	return ScoreResult{
		HealthScore:      HealthRiskScore(records),
		EnvironmentScore: EnvironmentRiskScore(records),
	}
}

// aggregate averages weight over records and scales to a percentage,
// rounding half away from zero.
func aggregate(records []IngredientRecord, weight func(IngredientRecord) float64) int {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += weight(r)
	}
	return toPercent(sum / float64(len(records)))
}

func toPercent(v float64) int {
	return int(math.Round(v * 100))
}

func environmentLabelWeight(label string) float64 {
	if w, ok := environmentWeights[label]; ok {
		return w
	}
	return defaultEnvironmentWeight
}

func hasEndocrineCategory(categories []string) bool {
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c), "endocrine") {
			return true
		}
	}
	return false
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
