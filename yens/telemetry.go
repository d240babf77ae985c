package yens

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter. They resolve against the global providers,
// so nothing is exported until the host installs an SDK.
var (
	tracer = otel.Tracer("kpaths.yens")
	meter  = otel.Meter("kpaths.yens")
)

var (
	computeLatency metric.Float64Histogram
	computeTotal   metric.Int64Counter
	roundsTotal    metric.Int64Counter
	spurTotal      metric.Int64Counter
	candidateTotal metric.Int64Counter
	pathsFound     metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call concurrently.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		computeLatency, err = meter.Float64Histogram(
			"yens_compute_duration_seconds",
			metric.WithDescription("Duration of K shortest paths computations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		computeTotal, err = meter.Int64Counter(
			"yens_compute_total",
			metric.WithDescription("Total number of K shortest paths computations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		roundsTotal, err = meter.Int64Counter(
			"yens_rounds_total",
			metric.WithDescription("Total number of completed deviation rounds"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		spurTotal, err = meter.Int64Counter(
			"yens_spur_searches_total",
			metric.WithDescription("Total number of spur shortest-path searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		candidateTotal, err = meter.Int64Counter(
			"yens_candidates_total",
			metric.WithDescription("Total number of candidate paths enqueued"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pathsFound, err = meter.Int64Histogram(
			"yens_paths_found",
			metric.WithDescription("Number of paths returned per computation"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordComputeMetrics records one finished computation.
func recordComputeMetrics(ctx context.Context, duration time.Duration, found int, cancelled, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.Bool("cancelled", cancelled),
	)
	computeLatency.Record(ctx, duration.Seconds(), attrs)
	computeTotal.Add(ctx, 1, attrs)
	if success {
		pathsFound.Record(ctx, int64(found))
	}
}

// recordRoundMetrics records one finished round.
func recordRoundMetrics(ctx context.Context, spurSearches, candidates int64) {
	if err := initMetrics(); err != nil {
		return
	}
	roundsTotal.Add(ctx, 1)
	spurTotal.Add(ctx, spurSearches)
	candidateTotal.Add(ctx, candidates)
}

// startComputeSpan creates the root span of a computation.
func startComputeSpan(ctx context.Context, runID string, cfg Config, nodeCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "yens.Compute",
		trace.WithAttributes(
			attribute.String("yens.run_id", runID),
			attribute.Int("yens.k", cfg.K),
			attribute.Int("yens.concurrency", cfg.Concurrency),
			attribute.Bool("yens.track_relationships", cfg.TrackRelationships),
			attribute.Int("graph.node_count", nodeCount),
		),
	)
}

// startRoundSpan creates a child span for one deviation round.
func startRoundSpan(ctx context.Context, k, spurFrom, spurTo int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "yens.round",
		trace.WithAttributes(
			attribute.Int("yens.round", k),
			attribute.Int("yens.spur_from", spurFrom),
			attribute.Int("yens.spur_to", spurTo),
		),
	)
}

// setComputeSpanResult annotates the root span with the outcome.
func setComputeSpanResult(span trace.Span, found int, cancelled bool, err error) {
	span.SetAttributes(
		attribute.Int("yens.paths_found", found),
		attribute.Bool("yens.cancelled", cancelled),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
