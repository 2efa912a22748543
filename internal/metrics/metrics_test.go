package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgreementTransitionsCounter(t *testing.T) {
	before := testutil.ToFloat64(AgreementTransitions.WithLabelValues("accept", "ACCEPTED"))

	AgreementTransitions.WithLabelValues("accept", "ACCEPTED").Inc()

	after := testutil.ToFloat64(AgreementTransitions.WithLabelValues("accept", "ACCEPTED"))
	assert.Equal(t, before+1, after)
}

func TestMiddleware_RecordsRoute(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/skills", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/skills", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	count := testutil.CollectAndCount(HTTPRequestDuration, "skillswap_http_request_duration_seconds")
	assert.GreaterOrEqual(t, count, 1)
}
