package cache

import "fmt"

// lruRegister tracks, for one set, the recency rank of each way. queue[w]
// is the rank of way w: 0 is least-recently-used, ways-1 is most-recently-
// used. queue is always a permutation of {0, ..., ways-1}; it starts as the
// identity permutation, so way 0 is LRU initially (moot, since every way
// begins invalid and FindVictim never consults the LRU register while an
// invalid slot remains).
type lruRegister struct {
	queue []uint32
}

func newLRURegister(ways int) lruRegister {
	q := make([]uint32, ways)
	for i := range q {
		q[i] = uint32(i)
	}
	return lruRegister{queue: q}
}

// lru returns the way whose rank is 0. A register with no rank-0 entry
// means the permutation invariant has broken somewhere upstream; this is
// an invariant violation and must abort, not silently return a wrong way.
func (r *lruRegister) lru() int {
	for w, rank := range r.queue {
		if rank == 0 {
			return w
		}
	}
	panic(fmt.Sprintf("cache: lru register broken, no rank-0 entry in %v", r.queue))
}

// touch promotes way w to most-recently-used. Let x = queue[w]; set
// queue[w] = ways-1, and decrement every other rank that was greater than
// x. This is the textbook O(ways) exact-LRU update and preserves the
// permutation invariant.
func (r *lruRegister) touch(w int) {
	ways := len(r.queue)
	x := r.queue[w]
	r.queue[w] = uint32(ways - 1)
	for i := range r.queue {
		if i != w && r.queue[i] > x {
			r.queue[i]--
		}
	}
}
