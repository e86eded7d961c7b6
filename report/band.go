package report

// Band is the display severity of an aggregate score.
type Band string

const (
	BandGood    Band = "good"
	BandCaution Band = "caution"
	BandSevere  Band = "severe"
)

// BandConfig holds the lower bounds of the caution and severe bands.
type BandConfig struct {
	Caution int `json:"caution" yaml:"caution"`
	Severe  int `json:"severe" yaml:"severe"`
}

// BandFor classifies a 0-100 score. Zero thresholds fall back to 34 and 67.
func BandFor(score int, cfg BandConfig) Band {
	cfg.applyDefaults()
	switch {
	case score >= cfg.Severe:
		return BandSevere
	case score >= cfg.Caution:
		return BandCaution
	default:
		return BandGood
	}
}

func (c *BandConfig) applyDefaults() {
	if c.Caution <= 0 {
		c.Caution = 34
	}
	if c.Severe <= 0 {
		c.Severe = 67
	}
	if c.Severe < c.Caution {
		c.Severe = c.Caution
	}
}
