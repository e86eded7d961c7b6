package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeSample(t *testing.T) {
	s := Summarize(SampleReport().Analysis)

	assert.Equal(t, HealthSummary{High: 1, Medium: 3, Total: 4}, s.Health)
	require.NotNil(t, s.Environment)
	assert.Equal(t, map[string]int{"High": 1, "Moderate": 2, "Low": 0, "Unknown": 1, "Variable": 0}, s.Environment.AquaticToxicity)
	assert.Equal(t, map[string]int{"High": 0, "Moderate": 1, "Low": 2, "Unknown": 1, "Variable": 0}, s.Environment.Bioaccumulation)
	assert.Equal(t, map[string]int{"High": 0, "Moderate": 2, "Low": 0, "Unknown": 1, "Variable": 1}, s.Environment.Persistence)
	assert.Equal(t, 1, s.Environment.AnyHighFlag)
}

func TestSummarizeUnrecognizedValues(t *testing.T) {
	records := []IngredientRecord{
		{HazardLevel: "high", EnvironmentalImpact: envOf("Severe", "", "HIGH (lingers)")},
		{HazardLevel: "Unknown"},
		{HazardLevel: "Low"},
	}
	s := Summarize(records)

	assert.Equal(t, HealthSummary{Low: 1, Unknown: 1, Total: 3}, s.Health)
	assert.Equal(t, 1, s.Environment.AquaticToxicity["Severe"])
	assert.Equal(t, 2, s.Environment.AquaticToxicity["Unknown"])
	assert.Equal(t, 3, s.Environment.Bioaccumulation["Unknown"])
	assert.Equal(t, 1, s.Environment.Persistence["High"])
	assert.Equal(t, 1, s.Environment.AnyHighFlag)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, HealthSummary{}, s.Health)
	assert.Len(t, s.Environment.AquaticToxicity, len(Vocabulary()))
	assert.Zero(t, s.Environment.AnyHighFlag)
}

func TestVocabularyIsACopy(t *testing.T) {
	labels := Vocabulary()
	assert.Equal(t, []string{"High", "Moderate", "Low", "Unknown", "Variable"}, labels)
	labels[0] = "Severe"

	assert.Equal(t, "High", Vocabulary()[0])
	s := Summarize(nil)
	assert.Contains(t, s.Environment.Persistence, "High")
	assert.NotContains(t, s.Environment.Persistence, "Severe")
}
