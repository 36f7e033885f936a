package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractReadCounts(t *testing.T) {
	m := New(nil)
	m.ContractRead("name", time.Millisecond, nil)
	m.ContractRead("name", time.Millisecond, errors.New("boom"))
	m.ContractRead("goal", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.contractReads.WithLabelValues("name", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contractReads.WithLabelValues("name", OutcomeError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.readDuration))
}

func TestTransactionAndReconciled(t *testing.T) {
	m := New(nil)
	m.Transaction("addTier", nil)
	m.Reconciled("confirmed")
	m.Reconciled("confirmed")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactions.WithLabelValues("addTier", OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reconciled.WithLabelValues("confirmed")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ContractRead("name", time.Second, nil)
		m.Transaction("addTier", nil)
		m.Reconciled("failed")
	})

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMiddlewareLabelsRoutePattern(t *testing.T) {
	m := New(nil)
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/campaign/{contractAddress}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaign/0xabc", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/campaign/{contractAddress}", "404")))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "crowdfund_http_requests_total"))
}
