// Package dijkstra_test validates the single-source entry point: input
// validation, distances, predecessor maps, distance caps and walls.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	weighted := core.NewGraph(core.WithWeighted())
	negative := core.NewGraph(core.WithWeighted())
	if _, err := negative.AddEdge("A", "B", -5); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		g    *core.Graph
		opts []dijkstra.Option
		want error
	}{
		{"empty source", weighted, nil, dijkstra.ErrEmptySource},
		{"nil graph without source", nil, nil, dijkstra.ErrEmptySource},
		{"nil graph", nil, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrNilGraph},
		{"unweighted", core.NewGraph(), []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrUnweightedGraph},
		{"missing source", weighted, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrVertexNotFound},
		{"negative weight", negative, []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := dijkstra.Dijkstra(tc.g, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assertPanics := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		f()
	}
	var o dijkstra.Options
	assertPanics("negative max distance", func() { dijkstra.WithMaxDistance(-1)(&o) })
	assertPanics("zero threshold", func() { dijkstra.WithInfEdgeThreshold(0)(&o) })
	assertPanics("NaN threshold", func() { dijkstra.WithInfEdgeThreshold(math.NaN())(&o) })
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	// A—B(1), B—C(2), A—C(5), undirected
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Fatal("prev must be nil without WithReturnPath")
	}
	want := map[string]float64{"A": 0, "B": 1, "C": 3}
	for v, d := range want {
		if dist[v] != d {
			t.Errorf("dist[%s] = %v, want %v", v, dist[v], d)
		}
	}
}

func TestDijkstra_ReturnPathAndUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 2}, {"A", "C", 1}, {"C", "B", 0.5}, {"B", "D", 3}} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddVertex("Z"); err != nil {
		t.Fatal(err)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["D"] != 4.5 || prev["D"] != "B" || prev["B"] != "C" || prev["A"] != "" {
		t.Fatalf("unexpected dist/prev: %v %v", dist, prev)
	}
	if !dijkstra.Unreachable(dist["Z"]) || prev["Z"] != "" {
		t.Fatalf("Z must be unreachable, got %v %q", dist["Z"], prev["Z"])
	}
}

func TestDijkstra_MaxDistanceAndWalls(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if dist["B"] != 1 || !dijkstra.Unreachable(dist["C"]) {
		t.Fatalf("MaxDistance=2: got %v", dist)
	}

	// wall out B—C so C is only reachable over the direct edge
	dist, _, err = dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	if err != nil {
		t.Fatal(err)
	}
	if !dijkstra.Unreachable(dist["C"]) {
		t.Fatalf("threshold 2 also walls A—C(5); got %v", dist["C"])
	}
	dist, _, err = dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(3))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 3 {
		t.Fatalf("threshold 3 keeps B—C(2); got %v", dist["C"])
	}
}

func TestDijkstra_CancelledContext(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	// a chain long enough to pass the periodic cancellation check
	prev := "v0"
	for i := 1; i < 3000; i++ {
		next := "v" + strconv.Itoa(i)
		if _, err := g.AddEdge(prev, next, 1); err != nil {
			t.Fatal(err)
		}
		prev = next
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("v0"), dijkstra.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestShortestPath(t *testing.T) {
	res, ok, err := dijkstra.ShortestPath(context.Background(), triangle(t), "A", "C")
	if err != nil || !ok {
		t.Fatalf("ShortestPath: ok=%v err=%v", ok, err)
	}
	want := []string{"A", "B", "C"}
	for i := range want {
		if res.NodeIDs[i] != want[i] {
			t.Fatalf("NodeIDs = %v, want %v", res.NodeIDs, want)
		}
	}
	if res.TotalCost != 3 || len(res.EdgeIDs) != 2 {
		t.Fatalf("unexpected result %+v", res)
	}

	_, _, err = dijkstra.ShortestPath(context.Background(), triangle(t), "A", "nope")
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}

	_, _, err = dijkstra.ShortestPath(context.Background(), triangle(t), "", "C")
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
	_, _, err = dijkstra.ShortestPath(context.Background(), triangle(t), "A", "")
	if !errors.Is(err, dijkstra.ErrEmptyTarget) {
		t.Fatalf("expected ErrEmptyTarget, got %v", err)
	}
}
