package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courtbeat"

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	videoProcessing = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "video",
		Name:      "processing_total",
		Help:      "Finished video processing tasks by result.",
	}, []string{"result"})

	videoInflight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "video",
		Name:      "processing_inflight",
		Help:      "Video processing tasks currently talking to the video host.",
	})

	videoHostRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "videohost",
		Name:      "requests_total",
		Help:      "Calls to the external video host by operation and result.",
	}, []string{"op", "result"})

	analyticsEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "events_total",
		Help:      "Tracked analytics events by event type.",
	}, []string{"event_type"})
)

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func VideoProcessed(err error) {
	videoProcessing.WithLabelValues(resultLabel(err)).Inc()
}

func VideoInflightInc() { videoInflight.Inc() }
func VideoInflightDec() { videoInflight.Dec() }

func VideoHostRequest(op string, err error) {
	videoHostRequests.WithLabelValues(op, resultLabel(err)).Inc()
}

func AnalyticsEvent(eventType string) {
	analyticsEvents.WithLabelValues(eventType).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
