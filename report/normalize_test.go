package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSampleRecord(t *testing.T) {
	rec := SampleReport().Analysis[0]
	n := Normalize(rec)

	assert.Equal(t, rec, n.Record)
	assert.Equal(t, ParsedLevel{"Moderate", "toxic to algae/fish at higher concentrations"}, n.AquaticToxicity)
	assert.Equal(t, ParsedLevel{"Low", ""}, n.Bioaccumulation)
	assert.Equal(t, ParsedLevel{"Moderate", "partially biodegradable"}, n.Persistence)
	assert.InDelta(t, 1.0, n.HealthWeight, 1e-9)
	assert.InDelta(t, 1.4/3, n.EnvironmentWeight, 1e-9)
	assert.Equal(t, 99, n.ConfidencePercent)
	assert.Equal(t, []string{
		"Health Canada Hotlist (restrictions); EU SCCS opinions",
		"SCCS opinions on parabens",
		"EWG Skin Deep",
	}, n.Sources)
}

func TestNormalizeSparseRecord(t *testing.T) {
	n := Normalize(IngredientRecord{Query: "aqua", HazardLevel: "Unknown", SourceConsumer: "EWG"})

	assert.Equal(t, ParsedLevel{"Unknown", ""}, n.AquaticToxicity)
	assert.Equal(t, ParsedLevel{"Unknown", ""}, n.Bioaccumulation)
	assert.Equal(t, ParsedLevel{"Unknown", ""}, n.Persistence)
	assert.InDelta(t, 0.3, n.HealthWeight, 1e-9)
	assert.InDelta(t, 0.5, n.EnvironmentWeight, 1e-9)
	assert.Equal(t, 0, n.ConfidencePercent)
	assert.Equal(t, []string{"EWG"}, n.Sources)
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	records := SampleReport().Analysis
	out := NormalizeAll(records)
	require.Len(t, out, len(records))
	for i := range records {
		assert.Equal(t, records[i].ID, out[i].Record.ID)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Parfum", NormalizeText("  Ｐａｒｆｕｍ\u0007 "))
	assert.Equal(t, "sodium laureth sulfate", NormalizeText("sodium\tlaureth \n sulfate"))
	assert.Equal(t, "ci 77491", NormalizeText("ci\u3000７７４９１"))
	assert.Equal(t, "", NormalizeText("   "))
}
