package metrics

import "github.com/prometheus/client_golang/prometheus"

// RecordsStored tracks the number of records currently in the store.
var RecordsStored = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "strdex",
	Name:      "records_stored",
	Help:      "Number of string records currently stored",
})

// RegisterStoreMetrics registers store-level metrics with the default
// registry. Called explicitly from the composition root (no init()).
func RegisterStoreMetrics() {
	prometheus.MustRegister(RecordsStored)
}
