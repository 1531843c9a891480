package statement

import "github.com/prometheus/client_golang/prometheus"

// tableMetrics holds the per-Table collectors registered by WithMetrics.
// All fields are nil-safe from the Table's perspective: every call site
// guards on t.metrics == nil first, so a Table built without WithMetrics
// behaves identically to one built with it, just unobserved.
type tableMetrics struct {
	imported   *prometheus.CounterVec
	dropped    *prometheus.CounterVec
	misbehaved *prometheus.CounterVec
	includable prometheus.Gauge
}

func newTableMetrics(reg prometheus.Registerer) (*tableMetrics, error) {
	m := &tableMetrics{
		imported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statement_table",
			Name:      "statements_imported_total",
			Help:      "Number of statements accepted for processing, by statement kind.",
		}, []string{"kind"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statement_table",
			Name:      "statements_dropped_total",
			Help:      "Number of statements silently dropped, by reason.",
		}, []string{"reason"}),
		misbehaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statement_table",
			Name:      "misbehavior_detected_total",
			Help:      "Number of misbehavior proofs recorded, by kind.",
		}, []string{"kind"}),
		includable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "statement_table",
			Name:      "candidates_includable",
			Help:      "Number of candidate records that met inclusion thresholds as of the last ProposedCandidates call.",
		}),
	}

	collectors := []prometheus.Collector{m.imported, m.dropped, m.misbehaved, m.includable}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
