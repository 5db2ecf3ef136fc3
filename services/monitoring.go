package services

import (
	"strconv"
	"time"

	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const MONITORING_SVC = "monitoring_svc"

// HTTP Metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Domain Metrics
var (
	conversationsCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "conversations_completed_total",
			Help: "Conversations that reached COMPLETED",
		},
	)

	conversationXPAwarded = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "conversation_xp_awarded",
			Help:    "XP awarded per completed conversation",
			Buckets: []float64{10, 25, 50, 75, 100, 150, 200, 300, 500},
		},
	)

	aiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Calls to the model backend by client and outcome",
		},
		[]string{"client", "outcome"},
	)

	aiRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Model backend call duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30},
		},
		[]string{"client"},
	)

	feedbackFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_fallback_total",
			Help: "Feedback responses replaced by the fallback analysis",
		},
	)

	feedbackScoreClampedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_score_clamped_total",
			Help: "Feedback scores replaced because they were missing or out of range",
		},
	)
)

// MonitoringService owns the Prometheus registry. Metrics are served by the
// main HTTP app at /metrics. The recording methods are safe on a nil
// receiver so services can run without monitoring in tests.
type MonitoringService struct {
	appContext.DefaultService

	register *prometheus.Registry
}

func (svc MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Start() error {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reg.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		conversationsCompletedTotal,
		conversationXPAwarded,
		aiRequestsTotal,
		aiRequestDurationSeconds,
		feedbackFallbackTotal,
		feedbackScoreClampedTotal,
	)

	svc.register = reg

	log.Info().Str("service", shared.ServiceName).Msg("Metrics registry initialized")
	return nil
}

func (svc *MonitoringService) MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(svc.register, promhttp.HandlerOpts{}))
}

func (svc *MonitoringService) RecordRequest(method, endpoint, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	httpRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(duration.Seconds())
}

func (svc *MonitoringService) RecordCompletion(xp int) {
	conversationsCompletedTotal.Inc()
	conversationXPAwarded.Observe(float64(xp))
}

// ObserveAI matches llm.Observer.
func (svc *MonitoringService) ObserveAI(client, model string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	aiRequestsTotal.WithLabelValues(client, outcome).Inc()
	aiRequestDurationSeconds.WithLabelValues(client).Observe(duration.Seconds())
}

func (svc *MonitoringService) RecordFeedbackFallback() {
	feedbackFallbackTotal.Inc()
}

func (svc *MonitoringService) RecordScoreClamped() {
	feedbackScoreClampedTotal.Inc()
}

// MonitoringMiddleware records request count and latency per route pattern.
func MonitoringMiddleware(monitoringSvc *MonitoringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		method := c.Method()

		err := c.Next()

		// route pattern, not the raw path
		endpoint := c.Route().Path

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if appErr, ok := shared.GetAppError(err); ok {
				status = appErr.StatusCode
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		monitoringSvc.RecordRequest(method, endpoint, strconv.Itoa(status), time.Since(start))
		return err
	}
}
