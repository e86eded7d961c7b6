package report

import "encoding/json"

// EnvironmentalImpact holds the three composite environmental fields of a record.
// Each value is either "<Label>" or "<Label> (<note>)".
type EnvironmentalImpact struct {
	AquaticToxicity string `json:"aquatic_toxicity"`
	Bioaccumulation string `json:"bioaccumulation"`
	Persistence     string `json:"persistence"`
}

// IngredientRecord is a single analyzed ingredient as emitted by the analyzer.
type IngredientRecord struct {
	ID                  string               `json:"id,omitempty"`
	Name                string               `json:"name"`
	MatchedAlias        string               `json:"matched_alias,omitempty"`
	Query               string               `json:"query"`
	HazardLevel         string               `json:"hazard_level"`
	Categories          []string             `json:"categories"`
	CASNumbers          []string             `json:"cas"`
	Confidence          float64              `json:"confidence"`
	Prop65Listed        bool                 `json:"prop65"`
	EnvironmentalImpact *EnvironmentalImpact `json:"environmental_impact,omitempty"`
	Reasons             []string             `json:"reasons,omitempty"`
	Recommendation      string               `json:"recommendation,omitempty"`
	RegulatoryCA        string               `json:"regulatory_CA,omitempty"`
	RegulatoryEU        string               `json:"regulatory_EU,omitempty"`
	SourceRegulatory    string               `json:"source_regulatory,omitempty"`
	SourceScientific    string               `json:"source_scientific,omitempty"`
	SourceConsumer      string               `json:"source_consumer,omitempty"`
}

// environment returns the record's environmental fields, or a zero value when absent.
func (r IngredientRecord) environment() EnvironmentalImpact {
	if r.EnvironmentalImpact == nil {
		return EnvironmentalImpact{}
	}
	return *r.EnvironmentalImpact
}

// ParsedLevel is a composite field split into its label and free-text note.
type ParsedLevel struct {
	Label string `json:"label"`
	Note  string `json:"note"`
}

// ScoreResult holds the two aggregate 0-100 risk scores. Higher is worse.
type ScoreResult struct {
	HealthScore      int `json:"healthScore"`
	EnvironmentScore int `json:"environmentScore"`
}

// HealthSummary counts records by exact hazard level.
type HealthSummary struct {
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Low     int `json:"low"`
	Unknown int `json:"unknown"`
	Total   int `json:"total"`
}

// EnvironmentSummary holds per-field label histograms.
type EnvironmentSummary struct {
	AquaticToxicity map[string]int `json:"aquatic_toxicity"`
	Bioaccumulation map[string]int `json:"bioaccumulation"`
	Persistence     map[string]int `json:"persistence"`
	AnyHighFlag     int            `json:"ingredients_with_any_high_env_flag"`
}

// Summary mirrors the analyzer's summary block.
type Summary struct {
	Health      HealthSummary       `json:"health"`
	Environment *EnvironmentSummary `json:"environment,omitempty"`
}

// UnmarshalJSON accepts both the nested form {"health": {...}, "environment": {...}}
// and the analyzer service's flat health counts {"high": 1, ..., "total": 2}.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, hasHealth := keys["health"]
	_, hasEnv := keys["environment"]
	if hasHealth || hasEnv {
		type nested Summary
		var n nested
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = Summary(n)
		return nil
	}
	var flat HealthSummary
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	*s = Summary{Health: flat}
	return nil
}

// Report is the analyzer payload: the analyzed records and an optional summary.
type Report struct {
	Analysis []IngredientRecord `json:"analysis"`
	Summary  *Summary           `json:"summary,omitempty"`
}

// FilterOptions selects which records a view shows.
type FilterOptions struct {
	OnlyHazardous bool   `json:"onlyHazardous"`
	Query         string `json:"query"`
}

// NormalizedRecord is the presentation view of a single record.
type NormalizedRecord struct {
	Record            IngredientRecord `json:"record"`
	AquaticToxicity   ParsedLevel      `json:"aquaticToxicity"`
	Bioaccumulation   ParsedLevel      `json:"bioaccumulation"`
	Persistence       ParsedLevel      `json:"persistence"`
	HealthWeight      float64          `json:"healthWeight"`
	EnvironmentWeight float64          `json:"environmentWeight"`
	ConfidencePercent int              `json:"confidencePercent"`
	Sources           []string         `json:"sources,omitempty"`
}

// Evaluation is the full result of evaluating a report under a filter.
type Evaluation struct {
	Scores          ScoreResult        `json:"scores"`
	HealthBand      Band               `json:"healthBand"`
	EnvironmentBand Band               `json:"environmentBand"`
	Summary         Summary            `json:"summary"`
	Items           []NormalizedRecord `json:"items"`
	Total           int                `json:"total"`
}
