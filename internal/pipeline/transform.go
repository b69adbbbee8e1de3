package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/meteocalc/internal/domain"
)

// ComfortTransformer implements Transformer by parsing station observations
// and enriching them with derived comfort metrics.
type ComfortTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a ComfortTransformer.
func NewTransformer(logger *slog.Logger) *ComfortTransformer {
	return &ComfortTransformer{logger: logger}
}

func (t *ComfortTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.ComfortReport, error) {
	obs, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.ComfortReport{}, err
	}

	report := domain.EnrichObservation(obs)
	t.logger.Debug("observation enriched",
		"station_id", report.StationID,
		"regime", report.Regime,
		"feels_like_f", report.FeelsLikeF,
	)
	return report, nil
}
