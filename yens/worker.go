// File: worker.go
// Role: Spur search worker: claims spur indices of the previous path and
//       enqueues one deviation candidate per successful search.
// Concurrency:
//   - Each worker owns its graph handle, engine and filter.
//   - Shared state is limited to the cursor (atomic), the candidate queue
//     (mutex) and the read-only previous/accepted paths of the round.

package yens

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/kpaths/csr"
	"github.com/katalvlaran/kpaths/dijkstra"
	"github.com/katalvlaran/kpaths/paths"
)

// roundTask is the read-only input of one round.
type roundTask struct {
	round    int
	previous paths.Path
	accepted []paths.Path
}

// roundStats is what a worker reports back after a round.
type roundStats struct {
	spurSearches int64
	candidates   int64
}

type spurWorker struct {
	id      int
	engine  *dijkstra.Engine
	filter  *relationshipFilter
	cursor  *spurCursor
	queue   *candidateQueue
	tracker ProgressTracker
}

func newSpurWorker(id int, g *csr.Graph, cfg Config, cursor *spurCursor, queue *candidateQueue, tracker ProgressTracker) (*spurWorker, error) {
	eng, err := dijkstra.NewEngine(g.ConcurrentCopy(), cfg.TargetNode)
	if err != nil {
		return nil, fmt.Errorf("yens: worker %d: %w", id, err)
	}
	strategy := ByTargetNode
	if cfg.TrackRelationships {
		strategy = ByEdgeID
	}
	w := &spurWorker{
		id:      id,
		engine:  eng,
		filter:  newRelationshipFilter(strategy),
		cursor:  cursor,
		queue:   queue,
		tracker: tracker,
	}
	eng.WithTrackRelationships(cfg.TrackRelationships).WithRelationshipFilter(w.filter.ValidRelationship)

	return w, nil
}

// runRound claims spur indices until the cursor passes the last deviation
// point of task.previous or ctx is cancelled. Cancellation is not an error.
func (w *spurWorker) runRound(ctx context.Context, task roundTask) (roundStats, error) {
	var st roundStats
	maxLength := task.previous.NodeCount() - 1

	for ctx.Err() == nil {
		i := w.cursor.Claim()
		if i >= maxLength {
			break
		}

		spurNode, err := task.previous.Node(i)
		if err != nil {
			return st, fmt.Errorf("yens: spur node %d: %w", i, err)
		}
		root, err := task.previous.SubPath(i + 1)
		if err != nil {
			return st, fmt.Errorf("yens: root path %d: %w", i, err)
		}

		w.engine.ResetTraversalState()
		w.filter.SetFilter(spurNode)
		for _, p := range task.accepted {
			if p.MatchesExactly(root, i+1) {
				w.filter.AddBlockingNeighbor(p, i)
			}
		}
		w.filter.Prepare()
		w.engine.WithVisited(task.previous.Nodes()[:i]...)

		spur, found, err := w.engine.WithSourceNode(spurNode).Compute(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return st, fmt.Errorf("yens: spur search at %d: %w", i, err)
		}
		st.spurSearches++
		w.tracker.SpurSearch(task.round, i, found)
		if !found {
			continue
		}

		added, err := w.queue.Add(candidate{path: root.Append(spur), spurIndex: i})
		if err != nil {
			return st, err
		}
		if added {
			st.candidates++
		}
	}

	return st, nil
}
