package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/meteocalc/internal/config"
	"github.com/couchcryptid/meteocalc/internal/domain"
	"github.com/couchcryptid/meteocalc/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

// ErrSinkUnavailable is returned while the sink circuit breaker is open.
var ErrSinkUnavailable = errors.New("sink unavailable")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer produces comfort reports to a Kafka topic behind a circuit breaker.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic. metrics may
// be nil, in which case breaker state changes are only logged.
func NewWriter(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return newWriter(w, cfg, logger, metrics)
}

func newWriter(mw messageWriter, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	maxFailures := cfg.SinkBreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := cfg.SinkBreakerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka-sink",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
			if metrics != nil {
				metrics.SinkBreakerState.Set(float64(to))
			}
		},
	})

	return &Writer{writer: mw, breaker: cb, logger: logger}
}

// LoadBatch serializes and publishes comfort reports to the sink topic in a
// single WriteMessages call. Serialization failures do not count against the
// breaker.
func (w *Writer) LoadBatch(ctx context.Context, reports []domain.ComfortReport) error {
	if len(reports) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(reports))
	for i := range reports {
		msg, err := serializeToMessage(reports[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	_, err := w.breaker.Execute(func() (interface{}, error) {
		return nil, w.writer.WriteMessages(ctx, msgs...)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("write comfort reports: %w", err)
	}
	return nil
}

// State reports the current sink breaker state.
func (w *Writer) State() gobreaker.State {
	return w.breaker.State()
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a ComfortReport into a Kafka message keyed by
// report ID so that reports from one station reading land on one partition.
func serializeToMessage(report domain.ComfortReport) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize comfort report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(report.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station_id", Value: []byte(report.StationID)},
			{Key: "regime", Value: []byte(report.Regime)},
			{Key: "processed_at", Value: []byte(report.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}
