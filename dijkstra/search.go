package dijkstra

import (
	"container/heap"
	"fmt"
)

// Search finds the cheapest sequence of steps from start to any state
// satisfying goal. successors(s) lists the transitions out of s; each Cost
// must be non-negative.
//
// Preconditions (in order):
//  1. options must be valid (ErrBadMaxCost).
//  2. successors must be non-nil (ErrNilSuccessors).
//  3. goal must be non-nil (ErrNilGoal).
//
// The first goal state popped from the heap is optimal. Ties between equal
// costs are broken by insertion order so results are reproducible.
func Search[S comparable](start S, successors func(S) []Step[S], goal func(S) bool, opts ...Option) (Result[S], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result[S]{}, cfg.err
	}

	// 2) Validate callbacks
	if successors == nil {
		return Result[S]{}, ErrNilSuccessors
	}
	if goal == nil {
		return Result[S]{}, ErrNilGoal
	}

	// 3) Prepare runner state
	r := &runner[S]{
		options:    cfg,
		successors: successors,
		goal:       goal,
		dist:       map[S]int64{start: 0},
		visited:    make(map[S]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}
	heap.Init(&r.pq)
	r.push(start, 0)

	// 4) Run main loop
	return r.process()
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	options    Options
	successors func(S) []Step[S]
	goal       func(S) bool
	dist       map[S]int64
	prev       map[S]S
	visited    map[S]bool
	pq         statePQ[S]
	seq        uint64
	expanded   int
}

func (r *runner[S]) push(s S, cost int64) {
	r.seq++
	heap.Push(&r.pq, &stateItem[S]{state: s, cost: cost, seq: r.seq})
}

// process pops states in cost order until a goal is reached or the heap drains.
func (r *runner[S]) process() (Result[S], error) {
	for r.pq.Len() > 0 {
		// 1) Honour cancellation
		if err := r.options.Ctx.Err(); err != nil {
			return Result[S]{}, err
		}

		// 2) Pop cheapest; skip stale entries
		item := heap.Pop(&r.pq).(*stateItem[S])
		u := item.state
		if r.visited[u] {
			continue
		}
		if item.cost > r.options.MaxCost {
			break
		}
		r.visited[u] = true
		r.expanded++

		// 3) Goal test on pop, not on push
		if r.goal(u) {
			return r.result(u, item.cost), nil
		}

		// 4) Relax outgoing steps
		if err := r.relax(u, item.cost); err != nil {
			return Result[S]{}, err
		}
	}

	return Result[S]{Expanded: r.expanded}, ErrNoPath
}

// relax pushes every successor of u whose cost improves on the best known.
func (r *runner[S]) relax(u S, d int64) error {
	for _, st := range r.successors(u) {
		if st.Cost < 0 {
			return fmt.Errorf("%w: cost=%d", ErrNegativeCost, st.Cost)
		}
		if r.visited[st.State] {
			continue
		}
		nd := d + st.Cost
		if nd > r.options.MaxCost {
			continue
		}
		if old, ok := r.dist[st.State]; ok && nd >= old {
			continue
		}
		r.dist[st.State] = nd
		if r.prev != nil {
			r.prev[st.State] = u
		}
		r.push(st.State, nd)
	}

	return nil
}

// result assembles the Result for goal state g reached at cost.
func (r *runner[S]) result(g S, cost int64) Result[S] {
	res := Result[S]{Goal: g, Cost: cost, Expanded: r.expanded}
	if r.prev == nil {
		return res
	}
	path := []S{g}
	for cur := g; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}

// stateItem is a heap entry: a state, the cost it was pushed with and a
// monotonically increasing sequence number for tie-breaking.
type stateItem[S comparable] struct {
	state S
	cost  int64
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by cost, then seq. Outdated
// entries stay in the heap and are skipped when popped.
type statePQ[S comparable] []*stateItem[S]

func (pq statePQ[S]) Len() int { return len(pq) }

func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
