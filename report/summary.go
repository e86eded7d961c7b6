package report

// Summarize computes the analyzer-style summary for a record list.
// Health counts use exact hazard level spellings; environment histograms
// always carry the five vocabulary labels and add any unrecognized label verbatim.
func Summarize(records []IngredientRecord) Summary {
	var health HealthSummary
	env := &EnvironmentSummary{
		AquaticToxicity: newHistogram(),
		Bioaccumulation: newHistogram(),
		Persistence:     newHistogram(),
	}
	for _, r := range records {
		switch r.HazardLevel {
		case "High":
			health.High++
		case "Medium":
			health.Medium++
		case "Low":
			health.Low++
		case "Unknown":
			health.Unknown++
		}
		health.Total++

		fields := r.environment()
		at := ParseLevel(fields.AquaticToxicity).Label
		ba := ParseLevel(fields.Bioaccumulation).Label
		pe := ParseLevel(fields.Persistence).Label
		env.AquaticToxicity[at]++
		env.Bioaccumulation[ba]++
		env.Persistence[pe]++
		if at == LabelHigh || ba == LabelHigh || pe == LabelHigh {
			env.AnyHighFlag++
		}
	}
	return Summary{Health: health, Environment: env}
}

func newHistogram() map[string]int {
	h := make(map[string]int, len(vocabulary))
	for _, label := range vocabulary {
		h[label] = 0
	}
	return h
}
