package yens_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/csr"
	"github.com/katalvlaran/kpaths/dijkstra"
	"github.com/katalvlaran/kpaths/yens"
)

type edge struct {
	u, v string
	w    float64
}

func buildGraph(t testing.TB, multi bool, edges []edge) *core.Graph {
	t.Helper()
	opts := []core.GraphOption{core.WithDirected(true), core.WithWeighted()}
	if multi {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// sevenNodes is the classic Yen example graph.
func sevenNodes(t testing.TB) *core.Graph {
	return buildGraph(t, false, []edge{
		{"c", "d", 3}, {"c", "e", 2},
		{"d", "f", 4},
		{"e", "d", 1}, {"e", "f", 2}, {"e", "g", 3},
		{"f", "g", 2}, {"f", "h", 1},
		{"g", "h", 2},
	})
}

func sequences(t *testing.T, res *yens.Result) ([]string, []float64) {
	t.Helper()
	var (
		seqs  []string
		costs []float64
	)
	for i, pr := range res.PathResults() {
		assert.Equal(t, i, pr.Index)
		seqs = append(seqs, strings.Join(pr.NodeIDs, "-"))
		costs = append(costs, pr.TotalCost)
	}

	return seqs, costs
}

func TestKShortest_Golden(t *testing.T) {
	wantSeqs := []string{"c-e-f-h", "c-e-g-h", "c-d-f-h", "c-e-d-f-h", "c-e-f-g-h", "c-d-f-g-h", "c-e-d-f-g-h"}
	wantCosts := []float64{5, 7, 8, 8, 8, 11, 11}

	g := sevenNodes(t)
	for k := 1; k <= len(wantSeqs); k++ {
		res, err := yens.KShortest(context.Background(), g,
			yens.Source("c"), yens.Target("h"), yens.WithK(k), yens.WithConcurrency(4))
		require.NoError(t, err)
		require.False(t, res.Cancelled)

		seqs, costs := sequences(t, res)
		assert.Equal(t, wantSeqs[:k], seqs, "k=%d", k)
		assert.Equal(t, wantCosts[:k], costs, "k=%d", k)
	}
}

func TestKShortest_FewerThanK(t *testing.T) {
	res, err := yens.KShortest(context.Background(), sevenNodes(t),
		yens.Source("c"), yens.Target("h"), yens.WithK(50))
	require.NoError(t, err)
	assert.Len(t, res.Paths, 7, "only seven loopless c→h paths exist")
}

func TestKShortest_Multigraph(t *testing.T) {
	var edges []edge
	for _, hop := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		for _, w := range []float64{1, 2, 3} {
			edges = append(edges, edge{hop[0], hop[1], w})
		}
	}
	edges = append(edges, edge{"a", "d", 200})
	g := buildGraph(t, true, edges)

	res, err := yens.KShortest(context.Background(), g,
		yens.Source("a"), yens.Target("d"), yens.WithK(9), yens.WithConcurrency(3))
	require.NoError(t, err)
	require.Len(t, res.Paths, 9)

	keys := make(map[string]bool)
	wantCosts := []float64{3, 4, 4, 4, 5, 5, 5, 5, 5}
	for i, pr := range res.PathResults() {
		assert.NotEqual(t, 200.0, pr.TotalCost)
		assert.Equal(t, wantCosts[i], pr.TotalCost, "rank %d", i)
		assert.Len(t, pr.EdgeIDs, 3)
		keys[strings.Join(pr.EdgeIDs, ",")] = true
	}
	assert.Len(t, keys, 9, "parallel relationships yield distinct paths")
}

func TestKShortest_MultigraphDirectEdgeLast(t *testing.T) {
	g := buildGraph(t, true, []edge{
		{"a", "b", 1}, {"a", "b", 2}, {"a", "b", 3},
		{"b", "c", 1}, {"c", "d", 1}, {"a", "d", 200},
	})
	res, err := yens.KShortest(context.Background(), g,
		yens.Source("a"), yens.Target("d"), yens.WithK(9))
	require.NoError(t, err)

	_, costs := sequences(t, res)
	assert.Equal(t, []float64{3, 4, 5, 200}, costs)
}

func TestKShortest_UntrackedMultigraphCollapsesParallels(t *testing.T) {
	g := buildGraph(t, true, []edge{
		{"a", "b", 1}, {"a", "b", 2}, {"b", "c", 1},
	})
	res, err := yens.KShortest(context.Background(), g,
		yens.Source("a"), yens.Target("c"), yens.WithK(3), yens.WithTrackRelationships(false))
	require.NoError(t, err)
	require.Len(t, res.Paths, 1, "node-based filtering sees a single a→b hop")
	assert.Nil(t, res.PathResults()[0].EdgeIDs)
}

func TestKShortest_FirstEqualsShortestPath(t *testing.T) {
	g := sevenNodes(t)
	sp, ok, err := dijkstra.ShortestPath(context.Background(), g, "c", "h")
	require.NoError(t, err)
	require.True(t, ok)

	res, err := yens.KShortest(context.Background(), g,
		yens.Source("c"), yens.Target("h"), yens.WithTrackRelationships(true))
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)
	assert.Equal(t, sp, res.PathResults()[0])
}

func TestKShortest_NoPath(t *testing.T) {
	g := sevenNodes(t)
	require.NoError(t, g.AddVertex("z"))

	res, err := yens.KShortest(context.Background(), g,
		yens.Source("c"), yens.Target("z"), yens.WithK(3))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Equal(t, 0, res.Rounds)

	// reversed direction is unreachable in a DAG
	res, err = yens.KShortest(context.Background(), g,
		yens.Source("h"), yens.Target("c"), yens.WithK(3))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestKShortest_Validation(t *testing.T) {
	ctx := context.Background()
	g := sevenNodes(t)

	_, err := yens.KShortest(ctx, g, yens.Target("h"))
	assert.ErrorIs(t, err, yens.ErrEmptySource)

	_, err = yens.KShortest(ctx, g, yens.Source("c"))
	assert.ErrorIs(t, err, yens.ErrEmptyTarget)

	_, err = yens.KShortest(ctx, nil, yens.Source("c"), yens.Target("h"))
	assert.ErrorIs(t, err, yens.ErrNilGraph)

	_, err = yens.KShortest(ctx, g, yens.Source("c"), yens.Target("nope"))
	assert.ErrorIs(t, err, yens.ErrVertexNotFound)

	_, err = yens.KShortest(ctx, g, yens.Source("c"), yens.Target("h"), yens.WithK(0))
	assert.ErrorIs(t, err, yens.ErrOptionViolation)
	assert.ErrorIs(t, err, yens.ErrBadK)

	_, err = yens.KShortest(ctx, g, yens.Source("c"), yens.Target("h"), yens.WithConcurrency(0))
	assert.ErrorIs(t, err, yens.ErrBadConcurrency)

	neg := buildGraph(t, false, []edge{{"a", "b", -1}})
	_, err = yens.KShortest(ctx, neg, yens.Source("a"), yens.Target("b"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestNew_Validation(t *testing.T) {
	snap, err := csr.FromCore(sevenNodes(t))
	require.NoError(t, err)

	_, err = yens.New(nil, yens.Config{})
	assert.ErrorIs(t, err, yens.ErrNilGraph)

	cfg := yens.DefaultConfig(snap, 0, 5)
	cfg.K = 0
	_, err = yens.New(snap, cfg)
	assert.ErrorIs(t, err, yens.ErrBadK)

	cfg = yens.DefaultConfig(snap, 0, 99)
	_, err = yens.New(snap, cfg)
	assert.ErrorIs(t, err, yens.ErrVertexNotFound)

	cfg = yens.DefaultConfig(snap, 0, 5)
	cfg.Concurrency = 0
	_, err = yens.New(snap, cfg)
	assert.ErrorIs(t, err, yens.ErrBadConcurrency)
}

func TestCompute_Reusable(t *testing.T) {
	snap, err := csr.FromCore(sevenNodes(t))
	require.NoError(t, err)
	cfg := yens.DefaultConfig(snap, 0, 5)
	cfg.K = 4
	y, err := yens.New(snap, cfg)
	require.NoError(t, err)

	first, err := y.Compute(context.Background())
	require.NoError(t, err)
	second, err := y.Compute(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.PathResults(), second.PathResults())
	assert.Equal(t, 3, first.Rounds)
	assert.Positive(t, first.SpurSearches)
}

// cancelAfter cancels the computation once round n has finished.
type cancelAfter struct {
	yens.NoopTracker
	n      int
	cancel context.CancelFunc
}

func (c cancelAfter) RoundFinished(round, _ int, _ bool) {
	if round == c.n {
		c.cancel()
	}
}

func TestKShortest_Cancellation(t *testing.T) {
	g := sevenNodes(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := yens.KShortest(ctx, g, yens.Source("c"), yens.Target("h"), yens.WithK(5))
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.LessOrEqual(t, len(res.Paths), 1)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	res, err = yens.KShortest(ctx, g, yens.Source("c"), yens.Target("h"), yens.WithK(7),
		yens.WithProgressTracker(cancelAfter{n: 2, cancel: cancel}))
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	seqs, _ := sequences(t, res)
	assert.Equal(t, []string{"c-e-f-h", "c-e-g-h", "c-d-f-h"}, seqs)
}

// recorder counts tracker events; SpurSearch runs on worker goroutines.
type recorder struct {
	mu       sync.Mutex
	started  int
	spurs    int
	rounds   []int
	finished int
	// firstSpur is the smallest spur index searched in each round.
	firstSpur map[int]int
}

func (r *recorder) Start(int) {
	r.mu.Lock()
	r.started++
	r.mu.Unlock()
}

func (r *recorder) SpurSearch(round, spurIndex int, _ bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spurs++
	if r.firstSpur == nil {
		r.firstSpur = make(map[int]int)
	}
	if cur, ok := r.firstSpur[round]; !ok || spurIndex < cur {
		r.firstSpur[round] = spurIndex
	}
}

func (r *recorder) RoundFinished(round, _ int, _ bool) {
	r.mu.Lock()
	r.rounds = append(r.rounds, round)
	r.mu.Unlock()
}

func (r *recorder) Finish(found int, _ bool) {
	r.mu.Lock()
	r.finished = found
	r.mu.Unlock()
}

func TestKShortest_ProgressTracker(t *testing.T) {
	rec := &recorder{}
	res, err := yens.KShortest(context.Background(), sevenNodes(t),
		yens.Source("c"), yens.Target("h"), yens.WithK(7), yens.WithConcurrency(2),
		yens.WithProgressTracker(rec))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.started)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, rec.rounds)
	assert.Equal(t, 7, rec.finished)
	assert.EqualValues(t, res.SpurSearches, rec.spurs)
}

func TestKShortest_ResumesAtSpurIndex(t *testing.T) {
	for _, workers := range []int{1, 3} {
		rec := &recorder{}
		res, err := yens.KShortest(context.Background(), sevenNodes(t),
			yens.Source("c"), yens.Target("h"), yens.WithK(7), yens.WithConcurrency(workers),
			yens.WithProgressTracker(rec))
		require.NoError(t, err)
		require.Len(t, res.Paths, 7)

		spurs := make([]int, len(res.Paths))
		for i, rp := range res.Paths {
			spurs[i] = rp.SpurIndex
		}
		assert.Equal(t, []int{0, 1, 0, 1, 2, 2, 3}, spurs, "workers=%d", workers)

		// round k deviates from rank k-1 starting at the index it was found at
		for k := 1; k < len(res.Paths); k++ {
			assert.Equal(t, res.Paths[k-1].SpurIndex, rec.firstSpur[k], "workers=%d round=%d", workers, k)
		}
		// c-e-g-h was found at index 1, so round 2 never revisits c
		assert.Equal(t, 1, rec.firstSpur[2])
		// 3 + 2 + 3 + 3 + 2 + 2 searches; restarting every round at 0 would run 21
		assert.EqualValues(t, 15, res.SpurSearches, "workers=%d", workers)
	}
}

// allSimplePathCosts enumerates every loopless source→target path of a
// small graph and returns their costs in ascending order.
func allSimplePathCosts(g *csr.Graph, source, target int) []float64 {
	var (
		costs   []float64
		onPath  = make([]bool, g.NodeCount())
		explore func(u int, cost float64)
	)
	explore = func(u int, cost float64) {
		if u == target {
			costs = append(costs, cost)
			return
		}
		onPath[u] = true
		g.ForEachRelationship(u, func(_, v, _ int, w float64) bool {
			if !onPath[v] {
				explore(v, cost+w)
			}
			return true
		})
		onPath[u] = false
	}
	explore(source, 0)
	slices.Sort(costs)

	return costs
}

func TestKShortest_MatchesBruteForce(t *testing.T) {
	const (
		n = 8
		k = 12
	)
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntegerWeightFn(1, 4))},
			builder.RandomSparse(n, 0.4),
		)
		require.NoError(t, err)
		snap, err := csr.FromCore(g)
		require.NoError(t, err)

		want := allSimplePathCosts(snap, 0, n-1)
		if len(want) > k {
			want = want[:k]
		}

		res, err := yens.KShortest(context.Background(), g,
			yens.Source("0"), yens.Target("7"), yens.WithK(k), yens.WithTrackRelationships(true))
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, res.Paths, len(want), "seed %d", seed)

		seen := make(map[string]bool)
		prev := 0.0
		for i, rp := range res.Paths {
			p := rp.Path
			assert.Equal(t, want[i], p.TotalCost(), "seed %d rank %d", seed, i)
			assert.True(t, p.IsSimple(), "seed %d rank %d", seed, i)
			assert.GreaterOrEqual(t, p.TotalCost(), prev)
			prev = p.TotalCost()

			w, ok := snap.Weight(p.Nodes(), p.Edges())
			require.True(t, ok)
			assert.Equal(t, w, p.TotalCost())

			assert.False(t, seen[p.Key()], "seed %d: duplicate %s", seed, p)
			seen[p.Key()] = true
		}
	}
}

func TestKShortest_ConcurrencyInvariant(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSymbNumb("v", 2), builder.WithSeed(42),
			builder.WithWeightFn(builder.IntegerWeightFn(1, 3))},
		builder.Layered(4, 3),
	)
	require.NoError(t, err)

	run := func(workers int) []string {
		res, err := yens.KShortest(context.Background(), g,
			yens.Source("v00"), yens.Target("v13"), yens.WithK(40), yens.WithConcurrency(workers))
		require.NoError(t, err)
		require.Len(t, res.Paths, 40)
		out := make([]string, len(res.Paths))
		for i, rp := range res.Paths {
			out[i] = rp.Path.String()
		}
		return out
	}

	want := run(1)
	for _, workers := range []int{2, 3, 8} {
		assert.Equal(t, want, run(workers), "concurrency %d", workers)
	}
}

func TestKShortest_UndirectedGrid(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Grid(3, 3))
	require.NoError(t, err)

	res, err := yens.KShortest(context.Background(), g,
		yens.Source("0,0"), yens.Target("2,2"), yens.WithK(8))
	require.NoError(t, err)
	require.Len(t, res.Paths, 8)
	// C(4,2) monotone lattice paths of four hops come first
	for i := 0; i < 6; i++ {
		assert.Equal(t, 4.0, res.Paths[i].Path.TotalCost())
	}
	assert.Equal(t, 6.0, res.Paths[6].Path.TotalCost())
}

func TestOptions_KeepFirstError(t *testing.T) {
	_, err := yens.KShortest(context.Background(), sevenNodes(t),
		yens.Source("c"), yens.Target("h"), yens.WithK(-1), yens.WithConcurrency(-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, yens.ErrBadK))
	assert.False(t, errors.Is(err, yens.ErrBadConcurrency))
}
