package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AgreementsCreated считает созданные соглашения.
	AgreementsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_agreements_created_total",
		Help: "Total number of proposed agreements",
	})

	// AgreementTransitions считает выполненные переходы по действию и целевому состоянию.
	AgreementTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_agreement_transitions_total",
		Help: "Total number of agreement state transitions",
	}, []string{"action", "to_state"})

	// AgreementStateConflicts считает проигранные гонки compare-and-set при переходе.
	AgreementStateConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_agreement_state_conflicts_total",
		Help: "Total number of concurrent agreement state changes detected",
	})

	// SessionsScheduled считает созданные сессии.
	SessionsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_sessions_scheduled_total",
		Help: "Total number of scheduled sessions",
	})

	// SkillCacheRequests считает обращения к кэшу навыков: hit, miss или error.
	SkillCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_skill_cache_requests_total",
		Help: "Skill cache lookups by result",
	}, []string{"result"})

	// HTTPRequestDuration время обработки HTTP-запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillswap_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Middleware записывает длительность каждого запроса по шаблону маршрута.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}

			HTTPRequestDuration.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
