package cycle

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/girth/core"
)

// queueItem pairs a vertex with the branch label it was reached through.
// A branch label is the index of the root neighbor that opened the branch.
type queueItem struct {
	v      int
	branch int
}

// walker encapsulates mutable search state. One walker can run many searches
// on the same graph; reset clears everything a previous run left behind.
type walker struct {
	graph *core.Graph
	opts  Options

	root    int
	queue   *arrayqueue.Queue // FIFO of queueItem
	waiting map[int]int       // vertex → branch, for entries still in queue
	pending []queueItem       // discovered while expanding the current vertex
	seen    *bitset.BitSet    // vertices with a provenance entry
	parent  []int             // provenance; meaningful only where seen is set

	partner1, partner2 int // collision endpoints; core.None until found
	expanded           int // dequeued vertex count, for logging
}

func newWalker(g *core.Graph, opts Options) *walker {
	n := g.Order()

	return &walker{
		graph:   g,
		opts:    opts,
		queue:   arrayqueue.New(),
		waiting: make(map[int]int, n),
		pending: make([]queueItem, 0, n),
		seen:    bitset.New(uint(n)),
		parent:  make([]int, n),
	}
}

// reset prepares the walker for a search rooted at root.
func (w *walker) reset(root int) {
	w.root = root
	w.queue.Clear()
	clear(w.waiting)
	w.pending = w.pending[:0]
	w.seen.ClearAll()
	w.partner1, w.partner2 = core.None, core.None
	w.expanded = 0
}

// run searches from root and returns the reconstructed cycle or nil.
// root must already be validated.
func (w *walker) run(root int) Cycle {
	w.reset(root)
	found := w.search()
	var c Cycle
	if found {
		c = w.reconstruct()
	}
	w.opts.Logger.Debug("cycle search",
		"root", root,
		"found", found,
		"length", len(c),
		"expanded", w.expanded,
	)

	return c
}

// search seeds one branch per root neighbor and processes the queue until a
// cross-branch collision is found or the queue drains.
func (w *walker) search() bool {
	w.discover(w.root, core.None)
	w.graph.EachNeighbor(w.root, func(n int) bool {
		w.discover(n, w.root)
		w.enqueue(queueItem{v: n, branch: n})
		return true
	})

	for !w.queue.Empty() {
		item := w.dequeue()
		if w.expand(item) {
			return true
		}
		for _, p := range w.pending {
			w.enqueue(p)
		}
		w.pending = w.pending[:0]
	}

	return false
}

// expand examines the neighbors of item.v in ascending order. It returns true
// on the first collision with a waiting vertex from another branch.
func (w *walker) expand(item queueItem) bool {
	collided := false
	w.graph.EachNeighbor(item.v, func(i int) bool {
		if b, ok := w.waiting[i]; ok && b != item.branch {
			w.partner1, w.partner2 = i, item.v
			collided = true
			return false
		}
		if w.seen.Test(uint(i)) {
			return true
		}
		w.discover(i, item.v)
		w.pending = append(w.pending, queueItem{v: i, branch: item.branch})
		return true
	})
	if collided {
		w.opts.OnCollision(w.partner1, w.partner2)
	}

	return collided
}

// discover records the provenance of v.
func (w *walker) discover(v, from int) {
	w.seen.Set(uint(v))
	w.parent[v] = from
}

func (w *walker) enqueue(item queueItem) {
	w.queue.Enqueue(item)
	w.waiting[item.v] = item.branch
	w.opts.OnEnqueue(item.v, item.branch)
}

func (w *walker) dequeue() queueItem {
	raw, _ := w.queue.Dequeue()
	item := raw.(queueItem)
	delete(w.waiting, item.v)
	w.expanded++
	w.opts.OnDequeue(item.v, item.branch)

	return item
}

// chainToRoot walks provenance from v back to (excluding) the root.
func (w *walker) chainToRoot(v int) []int {
	var chain []int
	for ; v != w.root; v = w.parent[v] {
		chain = append(chain, v)
	}

	return chain
}

// reconstruct returns [root] + reverse(chain(partner2)) + chain(partner1).
// The two chains lie in different branches, so they only meet at the root
// and the result has no repeated vertex.
func (w *walker) reconstruct() Cycle {
	chain1 := w.chainToRoot(w.partner1)
	chain2 := w.chainToRoot(w.partner2)

	c := make(Cycle, 0, 1+len(chain1)+len(chain2))
	c = append(c, w.root)
	for i := len(chain2) - 1; i >= 0; i-- {
		c = append(c, chain2[i])
	}

	return append(c, chain1...)
}
