package ingredients

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formulyst/report/report"
)

func testEntries() []Entry {
	return []Entry{
		{
			ID:             "ing_parabens",
			Name:           "Parabens (Methyl-, Ethyl-, Propyl-, Butyl-)",
			CAS:            []string{"99-76-3"},
			HazardLevel:    "High",
			Recommendation: "Restricted",
			Categories:     []string{"endocrine_disruptor", "preservative"},
			EnvironmentalImpact: &report.EnvironmentalImpact{
				AquaticToxicity: "Moderate (toxic to algae/fish)",
				Bioaccumulation: "Low",
				Persistence:     "Moderate (partially biodegradable)",
			},
			SourceConsumer: "EWG Skin Deep",
		},
		{
			ID:          "ing_phenoxyethanol",
			Name:        "Phenoxyethanol",
			CAS:         []string{"122-99-6"},
			HazardLevel: "Medium",
			Categories:  []string{"preservative", "irritant"},
		},
		{
			ID:          "ing_fragrance",
			Name:        "Fragrance / Parfum (allergens)",
			HazardLevel: "Medium",
			Categories:  []string{"allergen"},
			Prop65:      true,
		},
	}
}

func testAliases() map[string]string {
	return map[string]string{
		"methylparaben":  "ing_parabens",
		"Propylparaben":  "ing_parabens",
		"phenoxyethanol": "ing_phenoxyethanol",
		"parfum":         "ing_fragrance",
		"fragrance":      "ing_fragrance",
	}
}

func newTestMatcher(t *testing.T, logs *bytes.Buffer) *Matcher {
	t.Helper()
	db, err := NewDatabase(testEntries(), testAliases())
	require.NoError(t, err)
	var logger *log.Logger
	if logs != nil {
		logger = log.New(logs, "", 0)
	}
	return NewMatcher(db, 0, logger)
}

func TestNewDatabase(t *testing.T) {
	db, err := NewDatabase(testEntries(), testAliases())
	require.NoError(t, err)
	assert.Equal(t, 3, db.Size())
	assert.Equal(t, []string{"fragrance", "methylparaben", "parfum", "phenoxyethanol", "propylparaben"}, db.Aliases())

	e, ok := db.Lookup("propylparaben")
	require.True(t, ok)
	assert.Equal(t, "ing_parabens", e.ID)

	_, ok = db.Lookup("Propylparaben")
	assert.False(t, ok, "lookups expect normalized tokens")
}

func TestNewDatabaseRejectsDanglingAlias(t *testing.T) {
	_, err := NewDatabase(testEntries(), map[string]string{"talc": "ing_talc"})
	assert.ErrorIs(t, err, ErrUnknownAlias)

	_, err = NewDatabase([]Entry{{Name: "No ID"}}, nil)
	assert.ErrorContains(t, err, "has no id")
}

func TestLoadDatabase(t *testing.T) {
	dir := t.TempDir()
	hazards, err := json.Marshal(testEntries())
	require.NoError(t, err)
	aliases, err := json.Marshal(testAliases())
	require.NoError(t, err)
	hazardsPath := filepath.Join(dir, "hazards.json")
	aliasPath := filepath.Join(dir, "alias_index.json")
	require.NoError(t, os.WriteFile(hazardsPath, hazards, 0o644))
	require.NoError(t, os.WriteFile(aliasPath, aliases, 0o644))

	db, err := LoadDatabase(hazardsPath, aliasPath)
	require.NoError(t, err)
	assert.Equal(t, 3, db.Size())

	_, err = LoadDatabase(filepath.Join(dir, "missing.json"), aliasPath)
	assert.ErrorContains(t, err, "read missing.json")

	require.NoError(t, os.WriteFile(aliasPath, []byte("{"), 0o644))
	_, err = LoadDatabase(hazardsPath, aliasPath)
	assert.ErrorContains(t, err, "decode alias_index.json")
}

func TestMatcherExactMatch(t *testing.T) {
	m := newTestMatcher(t, nil)
	rep := m.Check([]string{"methylparaben"})

	require.Len(t, rep.Analysis, 1)
	rec := rep.Analysis[0]
	assert.Equal(t, "ing_parabens", rec.ID)
	assert.Equal(t, "methylparaben", rec.Query)
	assert.Equal(t, "methylparaben", rec.MatchedAlias)
	assert.Equal(t, "High", rec.HazardLevel)
	assert.Equal(t, "Restricted", rec.Recommendation)
	assert.InDelta(t, 0.99, rec.Confidence, 1e-9)
	require.NotNil(t, rec.EnvironmentalImpact)
	assert.Equal(t, "Low", rec.EnvironmentalImpact.Bioaccumulation)
}

func TestMatcherFuzzyMatch(t *testing.T) {
	m := newTestMatcher(t, nil)
	rep := m.Check([]string{"phenoxyethanal"})

	require.Len(t, rep.Analysis, 1)
	rec := rep.Analysis[0]
	assert.Equal(t, "ing_phenoxyethanol", rec.ID)
	assert.Equal(t, "phenoxyethanol", rec.MatchedAlias)
	assert.Equal(t, "phenoxyethanal", rec.Query)
	assert.InDelta(t, 0.93, rec.Confidence, 1e-9)
	assert.Equal(t, "Suggest avoid", rec.Recommendation, "missing recommendation uses the default")
}

func TestMatcherUnmatchedAndDuplicates(t *testing.T) {
	var logs bytes.Buffer
	m := newTestMatcher(t, &logs)
	rep := m.CheckText("Aqua, Parfum, Fragrance, Methylparaben, Propylparaben")

	require.Len(t, rep.Analysis, 5, "one record per token")
	assert.Equal(t, "aqua", rep.Analysis[0].Query)
	assert.Equal(t, "Unknown", rep.Analysis[0].HazardLevel)
	assert.Equal(t, "Suggest avoid", rep.Analysis[0].Recommendation)
	assert.Empty(t, rep.Analysis[0].ID)
	assert.Zero(t, rep.Analysis[0].Confidence)
	assert.Equal(t, "ing_fragrance", rep.Analysis[1].ID)
	assert.Equal(t, "ing_parabens", rep.Analysis[3].ID)

	require.NotNil(t, rep.Summary)
	assert.Equal(t, report.HealthSummary{High: 1, Medium: 1, Unknown: 3, Total: 5}, rep.Summary.Health)
	assert.Contains(t, logs.String(), "Checked 5 ingredients: 2 matched, 3 unknown")
}

func TestMatcherRepeatedEntryEmitsUnknownRecord(t *testing.T) {
	m := newTestMatcher(t, nil)
	rep := m.CheckText("Methylparaben, Propylparaben")

	require.Len(t, rep.Analysis, 2)
	first, second := rep.Analysis[0], rep.Analysis[1]
	assert.Equal(t, "ing_parabens", first.ID)
	assert.Equal(t, "High", first.HazardLevel)

	assert.Equal(t, "propylparaben", second.Query)
	assert.Empty(t, second.ID)
	assert.Empty(t, second.MatchedAlias)
	assert.Equal(t, "Unknown", second.HazardLevel)
	assert.Equal(t, "Suggest avoid", second.Recommendation)
	assert.Zero(t, second.Confidence)
}

func TestMatcherReportScores(t *testing.T) {
	m := newTestMatcher(t, nil)
	rep := m.CheckText("Methylparaben, Parfum")

	// parabens: High+endocrine → 1.0; fragrance: Medium+prop65 → 0.8
	assert.Equal(t, 90, report.HealthRiskScore(rep.Analysis))
}

func TestMatcherDoesNotShareEntrySlices(t *testing.T) {
	db, err := NewDatabase(testEntries(), testAliases())
	require.NoError(t, err)
	m := NewMatcher(db, 0.9, nil)

	rep := m.Check([]string{"methylparaben"})
	rep.Analysis[0].Categories[0] = "mutated"
	rep.Analysis[0].EnvironmentalImpact.Persistence = "mutated"

	e, _ := db.Lookup("methylparaben")
	assert.Equal(t, "endocrine_disruptor", e.Categories[0])
	assert.Equal(t, "Moderate (partially biodegradable)", e.EnvironmentalImpact.Persistence)
}

func TestTokenSetSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, TokenSetSimilarity("sodium laureth sulfate", "sulfate laureth sodium"), 1e-9)
	assert.InDelta(t, 1.0, TokenSetSimilarity("methylparaben", "methylparaben sodium"), 1e-9)
	assert.InDelta(t, 1-1.0/14, TokenSetSimilarity("phenoxyethanal", "phenoxyethanol"), 1e-9)
	assert.Less(t, TokenSetSimilarity("aqua", "parfum"), DefaultThreshold)
	assert.Zero(t, TokenSetSimilarity("", "parfum"))
	assert.Equal(t, TokenSetSimilarity("aqua glycerin", "glycerin oil"), TokenSetSimilarity("glycerin oil", "aqua glycerin"))
}
