package metrics

import (
	"time"
)

// Analysis phases
const (
	PhaseCentrality = "centrality"
	PhaseCommunity  = "community"
	PhaseLayout     = "layout"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordPhase records the duration of one analysis phase
func (r *Registry) RecordPhase(phase string, duration time.Duration) {
	r.AnalysisPhaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// RecordAnalysis records a completed analysis and the shape of its result
func (r *Registry) RecordAnalysis(duration time.Duration, nodes, edges, communities, merges int, modularity float64) {
	r.AnalysesTotal.WithLabelValues("success").Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.CommunitiesDetected.Set(float64(communities))
	r.CommunityMergesTotal.Add(float64(merges))
	r.PartitionModularity.Set(modularity)
}

// RecordBuildError records a rejected graph by error cause
func (r *Registry) RecordBuildError(cause string) {
	r.AnalysesTotal.WithLabelValues("rejected").Inc()
	r.GraphBuildErrorsTotal.WithLabelValues(cause).Inc()
}
