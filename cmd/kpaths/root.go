package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/internal/config"
	"github.com/katalvlaran/kpaths/internal/logging"
	"github.com/katalvlaran/kpaths/internal/telemetry"
	"github.com/katalvlaran/kpaths/loader"
)

const serviceName = "kpaths"

var errNoGraph = errors.New("no graph source: set --graph or --neo4j-uri")

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	graphFile   string
	neo4jURI    string
	logLevel    string
	logFormat   string
	metricsAddr string
	traceStdout bool
	jsonOutput  bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:           "kpaths",
		Short:         "K shortest loopless paths (Yen with Lawler's optimization)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&gf.graphFile, "graph", "", "graph document (.yaml, .yml, .json, optionally .gz, .zst or .lz4)")
	pf.StringVar(&gf.neo4jURI, "neo4j-uri", "", "read the graph from this Bolt URI instead of a file")
	pf.StringVar(&gf.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&gf.logFormat, "log-format", "", "text or json")
	pf.StringVar(&gf.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port")
	pf.BoolVar(&gf.traceStdout, "trace-stdout", false, "write OpenTelemetry spans to stderr")
	pf.BoolVar(&gf.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(newYensCmd(gf), newDijkstraCmd(gf))

	return root
}

// loadConfig merges the configuration file and environment with the flags
// the user set explicitly.
func (gf *globalFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("graph") {
		cfg.Graph.File = gf.graphFile
	}
	if flags.Changed("neo4j-uri") {
		cfg.Graph.Neo4j.URI = gf.neo4jURI
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = gf.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = gf.logFormat
	}
	if flags.Changed("metrics-addr") {
		cfg.Telemetry.MetricsAddr = gf.metricsAddr
	}
	if gf.traceStdout {
		cfg.Telemetry.TraceExporter = telemetry.ExporterStdout
	}

	return cfg, cfg.Validate()
}

// runtimeEnv is what every subcommand needs after configuration.
type runtimeEnv struct {
	cfg    config.Config
	logger *slog.Logger
	close  func()
}

func (gf *globalFlags) setup(cmd *cobra.Command) (*runtimeEnv, error) {
	cfg, err := gf.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	env := &runtimeEnv{
		cfg:    cfg,
		logger: logging.New(cmd.ErrOrStderr(), cfg.Logging),
		close:  func() {},
	}

	tcfg := telemetry.Config{
		ServiceName:    serviceName,
		TraceExporter:  cfg.Telemetry.TraceExporter,
		MetricExporter: telemetry.ExporterNone,
		TraceWriter:    cmd.ErrOrStderr(),
	}
	if cfg.Telemetry.MetricsAddr != "" {
		tcfg.MetricExporter = telemetry.ExporterPrometheus
	}
	prov, err := telemetry.Init(tcfg)
	if err != nil {
		return nil, err
	}

	var srv *http.Server
	if cfg.Telemetry.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.Telemetry.MetricsAddr)
		if err != nil {
			_ = prov.Shutdown(cmd.Context())
			return nil, fmt.Errorf("metrics listener: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", prov.MetricsHandler())
		srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				env.logger.Error("metrics server", "error", err)
			}
		}()
		env.logger.Info("metrics listening", "addr", ln.Addr().String())
	}

	env.close = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if srv != nil {
			_ = srv.Shutdown(ctx)
		}
		if err := prov.Shutdown(ctx); err != nil {
			env.logger.Warn("telemetry shutdown", "error", err)
		}
	}

	return env, nil
}

// loadGraph reads the configured graph source and logs its shape.
func (env *runtimeEnv) loadGraph(ctx context.Context) (*core.Graph, error) {
	g, err := env.readGraph(ctx)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	env.logger.Info("graph loaded",
		"vertices", st.VertexCount,
		"edges", st.EdgeCount,
		"directed", st.DirectedEdgeCount,
		"weighted", st.Weighted,
		"multigraph", st.AllowsMulti,
	)

	return g, nil
}

func (env *runtimeEnv) readGraph(ctx context.Context) (*core.Graph, error) {
	gc := env.cfg.Graph
	switch {
	case gc.File != "":
		env.logger.Debug("loading graph", "file", gc.File)
		return loader.FromFile(gc.File)
	case gc.Neo4j.URI != "":
		env.logger.Debug("loading graph", "neo4j", gc.Neo4j.URI)
		client, err := loader.NewNeo4jClient(ctx, loader.Neo4jOptions{
			URI:            gc.Neo4j.URI,
			Database:       gc.Neo4j.Database,
			Username:       gc.Neo4j.Username,
			Password:       gc.Neo4j.Password,
			MaxConnections: gc.Neo4j.MaxConnections,
		})
		if err != nil {
			return nil, err
		}
		defer func() { _ = client.Close(ctx) }()

		return loader.FromNeo4j(ctx, client, loader.Query{
			Cypher:     gc.Neo4j.Cypher,
			Directed:   gc.Neo4j.Directed,
			Multigraph: gc.Neo4j.Multigraph,
		})
	default:
		return nil, errNoGraph
	}
}
