package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticCheck(status Status) CheckFunc {
	return func() Check { return Check{Status: status} }
}

func TestChecksAreSeparated(t *testing.T) {
	hc := NewHealthChecker()

	liveCalled, readyCalled := false, false
	hc.RegisterLivenessCheck("live", func() Check {
		liveCalled = true
		return Check{Status: StatusHealthy}
	})
	hc.RegisterReadinessCheck("ready", func() Check {
		readyCalled = true
		return Check{Status: StatusHealthy}
	})

	resp := hc.CheckLiveness()
	assert.True(t, liveCalled)
	assert.False(t, readyCalled)
	assert.Contains(t, resp.Checks, "live")
	assert.Equal(t, "live", resp.Checks["live"].Name)

	resp = hc.CheckReadiness()
	assert.True(t, readyCalled)
	assert.Contains(t, resp.Checks, "ready")
	assert.NotContains(t, resp.Checks, "live")
}

func TestStatusAggregation(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"no checks", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := NewHealthChecker()
			for i, s := range tt.statuses {
				hc.RegisterReadinessCheck(string(rune('a'+i)), staticCheck(s))
			}
			assert.Equal(t, tt.want, hc.CheckReadiness().Status)
		})
	}
}

func TestEngineCheck(t *testing.T) {
	check := EngineCheck(func() error { return nil })()
	assert.Equal(t, StatusHealthy, check.Status)
	assert.Equal(t, "analytics_engine", check.Name)

	check = EngineCheck(func() error { return errors.New("worker pool is closed") })()
	assert.Equal(t, StatusUnhealthy, check.Status)
	assert.Equal(t, "worker pool is closed", check.Message)
}

func TestShutdownCheck(t *testing.T) {
	assert.Equal(t, StatusHealthy, ShutdownCheck(func() bool { return false })().Status)
	assert.Equal(t, StatusUnhealthy, ShutdownCheck(func() bool { return true })().Status)
}

func TestMemoryCheck(t *testing.T) {
	tests := []struct {
		name  string
		alloc uint64
		sys   uint64
		want  Status
	}{
		{"normal", 50, 100, StatusHealthy},
		{"high", 95, 100, StatusDegraded},
		{"zero sys", 10, 0, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := MemoryCheck(func() (uint64, uint64) { return tt.alloc, tt.sys })()
			assert.Equal(t, tt.want, check.Status)
			assert.Equal(t, tt.alloc, check.Details["alloc_bytes"])
		})
	}
}

func TestRuntimeMemory(t *testing.T) {
	alloc, sys := RuntimeMemory()
	assert.Positive(t, alloc)
	assert.GreaterOrEqual(t, sys, alloc)
}

func TestHandlers(t *testing.T) {
	hc := NewHealthChecker()
	hc.RegisterLivenessCheck("memory", staticCheck(StatusDegraded))
	hc.RegisterReadinessCheck("engine", staticCheck(StatusDegraded))

	rec := httptest.NewRecorder()
	hc.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusDegraded, resp.Status)

	rec = httptest.NewRecorder()
	hc.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestConcurrentRegistration(t *testing.T) {
	hc := NewHealthChecker()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hc.RegisterReadinessCheck(string(rune('a'+i)), staticCheck(StatusHealthy))
			hc.CheckReadiness()
		}(i)
	}
	wg.Wait()

	assert.Len(t, hc.CheckReadiness().Checks, 20)
}
