package pairing

import (
	"errors"

	"github.com/leighmacdonald/pairhash/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	lookupFound   = "found"
	lookupUnknown = "unknown"
)

// Metrics counts pairing operations.
type Metrics struct {
	NamesHashed prometheus.Counter
	KeyLookups  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with registerer. Collectors already
// registered by an earlier call are reused.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		NamesHashed: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "pairhash_names_hashed_total", Help: "Total client names hashed"}),
		KeyLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "pairhash_key_lookups_total", Help: "Total key registry lookups"},
			[]string{"result"}),
	}

	namesHashed, errNames := register(registerer, metrics.NamesHashed)
	if errNames != nil {
		return nil, errNames
	}

	keyLookups, errLookups := register(registerer, metrics.KeyLookups)
	if errLookups != nil {
		return nil, errLookups
	}

	metrics.NamesHashed = namesHashed
	metrics.KeyLookups = keyLookups

	return metrics, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) { //nolint:ireturn
	if errRegister := registerer.Register(collector); errRegister != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(errRegister, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return collector, errors.Join(errRegister, domain.ErrMetricsRegister)
	}

	return collector, nil
}

func (m *Metrics) hashed() {
	if m == nil {
		return
	}

	m.NamesHashed.Inc()
}

func (m *Metrics) lookedUp(found bool) {
	if m == nil {
		return
	}

	if found {
		m.KeyLookups.WithLabelValues(lookupFound).Inc()
	} else {
		m.KeyLookups.WithLabelValues(lookupUnknown).Inc()
	}
}
