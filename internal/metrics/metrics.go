package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registry = prometheus.NewRegistry()

	handlersExtracted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ctrldoc", Subsystem: "scan", Name: "handlers_total", Help: "Handlers extracted by verb"},
		[]string{"verb"},
	)
	paramsRendered = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "ctrldoc", Subsystem: "render", Name: "params_total", Help: "Request parameters rendered"},
	)
	returnTypes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ctrldoc", Subsystem: "render", Name: "return_types_total", Help: "Return type resolutions by outcome"},
		[]string{"outcome"},
	)
	runDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{Namespace: "ctrldoc", Subsystem: "run", Name: "duration_seconds", Help: "Run latency"},
		[]string{"outcome"},
	)
	documentBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "ctrldoc", Subsystem: "run", Name: "document_bytes", Help: "Size of the last written document"},
	)
)

func init() {
	registry.MustRegister(handlersExtracted, paramsRendered, returnTypes, runDuration, documentBytes)
}

// Return type resolution outcomes.
const (
	Linked     = "linked"
	Unresolved = "unresolved"
	Malformed  = "malformed"
)

func IncHandler(verb string) { handlersExtracted.WithLabelValues(verb).Inc() }
func AddParams(n int) { paramsRendered.Add(float64(n)) }
func IncReturnType(outcome string) { returnTypes.WithLabelValues(outcome).Inc() }
func ObserveRun(ok bool, d time.Duration) { runDuration.WithLabelValues(outcome(ok)).Observe(d.Seconds()) }
func SetDocumentBytes(n int) { documentBytes.Set(float64(n)) }

// Gatherer exposes the private registry.
func Gatherer() prometheus.Gatherer { return registry }

// WriteTextfile writes all metrics in the text exposition format to path,
// for pickup by a node-exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
