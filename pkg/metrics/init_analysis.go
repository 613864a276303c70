package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var analysisBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0}

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_analyses_total",
			Help: "Total number of graph analyses run",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "socialgraph_analysis_duration_seconds",
			Help:    "End-to-end analysis duration in seconds",
			Buckets: analysisBuckets,
		},
	)

	r.AnalysisPhaseDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialgraph_analysis_phase_duration_seconds",
			Help:    "Duration of each analysis phase in seconds",
			Buckets: analysisBuckets,
		},
		[]string{"phase"},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_graph_nodes",
			Help: "Node count of the most recently analyzed graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_graph_edges",
			Help: "Edge count of the most recently analyzed graph",
		},
	)

	r.CommunitiesDetected = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_communities",
			Help: "Communities found in the most recently analyzed graph",
		},
	)

	r.CommunityMergesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "socialgraph_community_merges_total",
			Help: "Total greedy modularity merges applied",
		},
	)

	r.PartitionModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_partition_modularity",
			Help: "Modularity of the most recent community partition",
		},
	)

	r.GraphBuildErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_graph_build_errors_total",
			Help: "Graph construction failures by cause",
		},
		[]string{"cause"},
	)
}
