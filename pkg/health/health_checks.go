package health

import "runtime"

// EngineCheck reports the analytics engine as unhealthy while ready fails.
func EngineCheck(ready func() error) CheckFunc {
	return func() Check {
		check := Check{Name: "analytics_engine"}

		if err := ready(); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		} else {
			check.Status = StatusHealthy
			check.Message = "Accepting analyses"
		}

		return check
	}
}

// ShutdownCheck fails readiness once the server starts draining.
func ShutdownCheck(shuttingDown func() bool) CheckFunc {
	return func() Check {
		check := Check{Name: "shutdown"}

		if shuttingDown() {
			check.Status = StatusUnhealthy
			check.Message = "Server is shutting down"
		} else {
			check.Status = StatusHealthy
		}

		return check
	}
}

// MemoryCheck degrades when heap allocation exceeds 90% of memory obtained
// from the OS.
func MemoryCheck(getUsage func() (alloc, sys uint64)) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "memory",
			Details: make(map[string]any),
		}

		alloc, sys := getUsage()

		check.Details["alloc_bytes"] = alloc
		check.Details["sys_bytes"] = sys

		usagePercent := 0.0
		if sys > 0 {
			usagePercent = float64(alloc) / float64(sys) * 100
		}

		if usagePercent > 90 {
			check.Status = StatusDegraded
			check.Message = "High memory usage"
		} else {
			check.Status = StatusHealthy
			check.Message = "Memory usage normal"
		}

		return check
	}
}

// RuntimeMemory reads heap usage from the Go runtime.
func RuntimeMemory() (alloc, sys uint64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc, m.Sys
}
