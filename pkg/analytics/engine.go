// Package analytics combines centrality, community detection and layout into
// a single immutable report per graph.
package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-socialgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-socialgraph/pkg/config"
	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
	"github.com/dd0wney/cluso-socialgraph/pkg/logging"
	"github.com/dd0wney/cluso-socialgraph/pkg/metrics"
	"github.com/dd0wney/cluso-socialgraph/pkg/parallel"
	"github.com/dd0wney/cluso-socialgraph/pkg/visualization"
)

// reportNamespace scopes report IDs.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dd0wney/cluso-socialgraph/report"))

// Options tunes an Engine.
type Options struct {
	LayoutAlgorithm string
	Layout          visualization.LayoutConfig
	Centrality      algorithms.CentralityOptions
	Parallel        bool
	Workers         int
}

// DefaultOptions runs the spring layout with default constants, sequentially.
func DefaultOptions() Options {
	return Options{
		LayoutAlgorithm: config.LayoutSpring,
		Layout:          *visualization.DefaultLayoutConfig(),
	}
}

// OptionsFromConfig maps the loaded configuration onto engine options.
func OptionsFromConfig(cfg *config.Config) Options {
	layout := visualization.DefaultLayoutConfig()
	layout.Iterations = cfg.Layout.Iterations
	layout.Scale = cfg.Layout.Scale

	return Options{
		LayoutAlgorithm: cfg.Layout.Algorithm,
		Layout:          *layout,
		Centrality:      algorithms.CentralityOptions{WassermanFaust: cfg.Analysis.WassermanFaust},
		Parallel:        cfg.Analysis.Parallel,
		Workers:         cfg.Analysis.Workers,
	}
}

// Engine runs analyses with logging, metrics and optional parallelism.
// It is safe for concurrent use.
type Engine struct {
	opts    Options
	logger  logging.Logger
	metrics *metrics.Registry
	pool    *parallel.WorkerPool
}

// NewEngine creates an engine. A nil logger discards output and a nil
// registry disables metrics.
func NewEngine(opts Options, logger logging.Logger, registry *metrics.Registry) (*Engine, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	switch opts.LayoutAlgorithm {
	case "":
		opts.LayoutAlgorithm = config.LayoutSpring
	case config.LayoutSpring, config.LayoutCircular:
	default:
		return nil, fmt.Errorf("unknown layout algorithm %q", opts.LayoutAlgorithm)
	}

	e := &Engine{
		opts:    opts,
		logger:  logger.With(logging.Component("analytics")),
		metrics: registry,
	}

	if opts.Parallel {
		pool, err := parallel.NewWorkerPool(opts.Workers, e.logger)
		if err != nil {
			return nil, fmt.Errorf("creating worker pool: %w", err)
		}
		e.pool = pool
	}
	return e, nil
}

// Close stops the engine's worker pool, if any.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// Ready returns ErrPoolClosed once a parallel engine has been closed.
func (e *Engine) Ready() error {
	if e.pool != nil && e.pool.Closed() {
		return parallel.ErrPoolClosed
	}
	return nil
}

// BuildGraph constructs a graph and records rejected input.
func (e *Engine) BuildGraph(nodes []string, edges []graph.Edge) (*graph.Graph, error) {
	g, err := graph.Build(nodes, edges)
	if err != nil {
		e.logger.Warn("graph construction failed", logging.Error(err))
		if e.metrics != nil {
			e.metrics.RecordBuildError(buildErrorCause(err))
		}
		return nil, err
	}
	return g, nil
}

// Analyze computes the full report for g. The three analyses only read g, so
// with Parallel set they run concurrently and are joined before assembly.
// The only possible error is ctx cancellation while waiting on the pool.
func (e *Engine) Analyze(ctx context.Context, g *graph.Graph, seed uint64) (*Report, error) {
	timer := logging.StartTimer(e.logger, "analysis complete",
		logging.Seed(seed),
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
	)
	start := time.Now()

	var (
		centrality *algorithms.CentralityResult
		clustering map[string]float64
		community  *algorithms.CommunityDetectionResult
		components int
		positions  map[string]visualization.Position
	)

	tasks := []parallel.Task{
		e.phase(metrics.PhaseCentrality, func() {
			centrality = algorithms.ComputeAllCentrality(g, e.opts.Centrality)
			clustering = algorithms.ClusteringCoefficient(g)
		}),
		e.phase(metrics.PhaseCommunity, func() {
			community = algorithms.GreedyModularity(g)
			components = len(algorithms.ConnectedComponents(g).Communities)
		}),
		e.phase(metrics.PhaseLayout, func() {
			positions = e.newLayout(seed).ComputeLayout(g)
		}),
	}

	if e.pool != nil {
		if err := e.pool.RunAll(ctx, tasks...); err != nil {
			timer.EndError(err)
			return nil, err
		}
	} else {
		for _, task := range tasks {
			if err := task(ctx); err != nil {
				timer.EndError(err)
				return nil, err
			}
		}
	}

	report := assemble(g, seed, e.opts, centrality, clustering, community, components, positions)

	timer.End()
	if e.metrics != nil {
		e.metrics.RecordAnalysis(time.Since(start), g.NodeCount(), g.EdgeCount(),
			len(report.communities), report.merges, report.modularity)
	}
	return report, nil
}

func (e *Engine) phase(name string, run func()) parallel.Task {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		timer := logging.StartTimer(e.logger, "phase complete", logging.Operation(name))
		run()
		elapsed := timer.EndDebug()
		if e.metrics != nil {
			e.metrics.RecordPhase(name, elapsed)
		}
		return nil
	}
}

func (e *Engine) newLayout(seed uint64) visualization.Layout {
	cfg := e.opts.Layout
	if e.opts.LayoutAlgorithm == config.LayoutCircular {
		return visualization.NewCircularLayout(&cfg)
	}
	return visualization.NewSpringLayout(&cfg, seed)
}

func assemble(
	g *graph.Graph,
	seed uint64,
	opts Options,
	centrality *algorithms.CentralityResult,
	clustering map[string]float64,
	community *algorithms.CommunityDetectionResult,
	components int,
	positions map[string]visualization.Position,
) *Report {
	communities := make([][]string, len(community.Communities))
	for i, c := range community.Communities {
		communities[i] = c.Members
	}

	return &Report{
		id:                 reportID(g, seed, opts),
		seed:               seed,
		layout:             opts.LayoutAlgorithm,
		nodes:              g.Nodes(),
		edges:              g.Edges(),
		centrality:         centrality.Scores,
		clustering:         clustering,
		communities:        communities,
		assignment:         community.NodeCommunity,
		modularity:         community.Modularity,
		merges:             len(community.Merges),
		components:         components,
		mostInfluential:    centrality.MostInfluential,
		hasMostInfluential: centrality.HasMostInfluential,
		positions:          positions,
	}
}

// reportID derives a name-based UUID from the graph fingerprint, the seed
// and every option that changes the output.
func reportID(g *graph.Graph, seed uint64, opts Options) uuid.UUID {
	h := sha256.New()
	fp := g.Fingerprint()
	h.Write(fp[:])

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	h.Write(buf[:])
	fmt.Fprintf(h, "%s|%d|%g|%t", opts.LayoutAlgorithm, opts.Layout.Iterations, opts.Layout.Scale, opts.Centrality.WassermanFaust)

	return uuid.NewSHA1(reportNamespace, h.Sum(nil))
}

func buildErrorCause(err error) string {
	switch {
	case errors.Is(err, graph.ErrDuplicateNode):
		return "duplicate_node"
	case errors.Is(err, graph.ErrUnknownNode):
		return "unknown_node"
	case errors.Is(err, graph.ErrSelfLoop):
		return "self_loop"
	case errors.Is(err, graph.ErrEmptyLabel):
		return "empty_label"
	default:
		return "other"
	}
}
