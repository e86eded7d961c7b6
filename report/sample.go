package report

// SampleReport returns the built-in four-ingredient report shown before any
// analyzer output is loaded. A fresh copy is returned on every call.
func SampleReport() Report {
	records := []IngredientRecord{
		{
			ID:           "ing_parabens_methyl_ethyl_propyl_butyl_29bf0ed0",
			Name:         "Parabens (Methyl-, Ethyl-, Propyl-, Butyl-)",
			MatchedAlias: "methylparaben",
			Query:        "methylparaben",
			HazardLevel:  "High",
			Categories:   []string{"endocrine_disruptor", "preservative"},
			CASNumbers:   []string{"99-76-3", "120-47-8", "94-13-3", "94-26-8"},
			Confidence:   0.99,
			EnvironmentalImpact: &EnvironmentalImpact{
				AquaticToxicity: "Moderate (toxic to algae/fish at higher concentrations)",
				Bioaccumulation: "Low",
				Persistence:     "Moderate (partially biodegradable)",
			},
			Reasons:          []string{"Endocrine activity; restrictions in certain regions"},
			Recommendation:   "Restricted",
			RegulatoryCA:     "restricted",
			RegulatoryEU:     "restricted",
			SourceRegulatory: "Health Canada Hotlist (restrictions); EU SCCS opinions",
			SourceScientific: "SCCS opinions on parabens",
			SourceConsumer:   "EWG Skin Deep",
		},
		{
			ID:           "ing_phenoxyethanol_b5b1eb43",
			Name:         "Phenoxyethanol",
			MatchedAlias: "phenoxyethanol",
			Query:        "phenoxyethanol",
			HazardLevel:  "Medium",
			Categories:   []string{"preservative", "irritant"},
			CASNumbers:   []string{"122-99-6"},
			Confidence:   0.99,
			EnvironmentalImpact: &EnvironmentalImpact{
				AquaticToxicity: "Moderate (toxic to fish/invertebrates)",
				Bioaccumulation: "Low",
				Persistence:     "Moderate (partially biodegradable)",
			},
			Reasons:          []string{"Restricted typically to ≤1% in many jurisdictions"},
			Recommendation:   "Restricted",
			RegulatoryCA:     "restricted (≤1% typical)",
			RegulatoryEU:     "restricted (Annex V)",
			SourceRegulatory: "EU Annex V; Health Canada positions",
			SourceScientific: "SCCS Opinion 2016",
			SourceConsumer:   "EWG Skin Deep",
		},
		{
			ID:           "ing_bht_butylated_hydroxytoluene_75a560e1",
			Name:         "BHT (Butylated Hydroxytoluene)",
			MatchedAlias: "bht (butylated hydroxytoluene)",
			Query:        "bht",
			HazardLevel:  "Medium",
			Categories:   []string{"antioxidant", "endocrine_activity"},
			CASNumbers:   []string{"128-37-0"},
			Confidence:   1,
			EnvironmentalImpact: &EnvironmentalImpact{
				AquaticToxicity: "Unknown",
				Bioaccumulation: "Unknown",
				Persistence:     "Unknown",
			},
			Reasons:          []string{"Endocrine activity data; allowed with limits"},
			Recommendation:   "Safe but criticized",
			RegulatoryCA:     "allowed",
			RegulatoryEU:     "allowed/restricted",
			SourceRegulatory: "EU opinions; general allowances",
			SourceScientific: "CIR Review",
			SourceConsumer:   "EWG Skin Deep",
		},
		{
			ID:           "ing_fragrance_parfum_allergens_30782c47",
			Name:         "Fragrance / Parfum (allergens)",
			MatchedAlias: "parfum",
			Query:        "parfum",
			HazardLevel:  "Medium",
			Categories:   []string{"allergen", "sensitizer", "mixture"},
			CASNumbers:   []string{},
			Confidence:   0.99,
			EnvironmentalImpact: &EnvironmentalImpact{
				AquaticToxicity: "High (many fragrance compounds toxic to aquatic life)",
				Bioaccumulation: "Moderate",
				Persistence:     "Variable (depends on components)",
			},
			Reasons:          []string{"Undisclosed mixture; EU allergen labeling list"},
			Recommendation:   "Restricted",
			RegulatoryCA:     "allowed (labeling)",
			RegulatoryEU:     "restricted (Annex III allergens)",
			SourceRegulatory: "EU Annex III Fragrance allergens; IFRA",
			SourceScientific: "SCCS fragrance allergen opinions",
			SourceConsumer:   "EWG Skin Deep",
		},
	}
	summary := Summarize(records)
	return Report{Analysis: records, Summary: &summary}
}
