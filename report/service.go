package report

import (
	"log"
	"sync"
)

// Service evaluates analyzer reports under the configured filter and bands.
type Service struct {
	cfgMu sync.RWMutex
	cfg   Config

	logger *log.Logger
}

// NewService constructs a service with the given configuration.
func NewService(cfg Config, logger *log.Logger) *Service {
	cfg.ApplyDefaults()
	return &Service{cfg: cfg, logger: logger}
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.Clone()
}

// UpdateConfig replaces the configuration.
func (s *Service) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// Evaluate scores the full record list and returns the normalized view of the
// records passing opts. Scores and summary always cover every record; only the
// item list is filtered.
func (s *Service) Evaluate(rep Report, opts FilterOptions) Evaluation {
	cfg := s.Config()
	records := rep.Analysis
	scores := Score(records)
	summary := Summarize(records)
	filtered := Filter(records, opts)
	s.logf("Scored %d ingredients: health=%d environment=%d (%d shown)",
		len(records), scores.HealthScore, scores.EnvironmentScore, len(filtered))
	return Evaluation{
		Scores:          scores,
		HealthBand:      BandFor(scores.HealthScore, cfg.Bands),
		EnvironmentBand: BandFor(scores.EnvironmentScore, cfg.Bands),
		Summary:         summary,
		Items:           NormalizeAll(filtered),
		Total:           len(records),
	}
}

// EvaluateDefault evaluates rep with the filter stored in the configuration.
func (s *Service) EvaluateDefault(rep Report) Evaluation {
	return s.Evaluate(rep, s.Config().Filter())
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
