package resolve

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/PBLBot/scheduling-api/plugin/nlp/dateparse"
	"github.com/PBLBot/scheduling-api/server/timezone"
)

// Service is the production Resolver.
type Service struct {
	cfg      Config
	detector *timezone.Detector
	parser   dateparse.Parser

	// now is the clock source, swappable in tests.
	now func() time.Time
}

// NewService creates a resolver. The timezone detector and date parser are
// explicit dependencies so tests can substitute either.
func NewService(cfg Config, detector *timezone.Detector, parser dateparse.Parser) (*Service, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &Service{
		cfg:      cfg,
		detector: detector,
		parser:   parser,
		now:      time.Now,
	}, nil
}

// Resolve runs the pipeline on one phrase. The wall clock is sampled once
// here; every downstream comparison uses the same instant.
func (s *Service) Resolve(ctx context.Context, text string) (*Resolution, error) {
	now := s.now()

	trimmed := strings.TrimSpace(text)
	if runes := []rune(trimmed); len(runes) > s.cfg.MaxTextLength {
		trimmed = string(runes[:s.cfg.MaxTextLength])
	}

	normalized := normalizeText(trimmed, now)

	res := &Resolution{Text: trimmed}
	if !isSchedulingRelevant(normalized) {
		res.Outcome = OutcomeNotRelevant
		return res, nil
	}

	spec, matched := s.detector.Detect(normalized)
	res.Timezone = spec

	if entries, ok := s.expandWeekdaySpan(normalized, spec, now); ok {
		res.Outcome = OutcomeSeries
		res.Strategy = StrategyWeekdayRange
		res.Series = entries
		return res, nil
	}

	if entries, ok := s.expandDateSpan(normalized, spec, now); ok {
		res.Outcome = OutcomeSeries
		res.Strategy = StrategyDateRange
		res.Series = entries
		return res, nil
	}

	rng, err := s.resolveGeneric(ctx, normalized, matched, spec, now)
	if err != nil {
		return nil, err
	}
	res.Strategy = StrategyGeneric
	if rng == nil {
		res.Outcome = OutcomeNoMatch
		return res, nil
	}
	res.Outcome = OutcomeRange
	res.Range = rng
	return res, nil
}

// seriesLocation resolves the detected zone for span expansion, keeping
// now's own location when no zone was detected or the zone fails to load.
func (s *Service) seriesLocation(spec timezone.Spec, now time.Time) *time.Location {
	if spec.IsNone() {
		return now.Location()
	}
	loc, err := spec.Location()
	if err != nil {
		slog.Warn("timezone conversion failed, keeping naive time",
			slog.String("timezone", spec.Label()),
			slog.String("error", err.Error()))
		return now.Location()
	}
	return loc
}

var _ Resolver = (*Service)(nil)
