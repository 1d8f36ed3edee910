// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pagepool

// RootIndex is the reserved page index held by the cache's trie root. No
// page returned by AcquireFreePages ever carries this index.
const RootIndex = 0

// PagePool is a fixed-size arena of pages. Index 0 is reserved for the
// trie root's sentinel page and is never handed out by AcquireFreePages;
// usable pages are indexed 1..capacity.
//
// PagePool performs no eviction or sharing policy of its own — that is
// the entirety of the cache's job. It is dumb bookkeeping: a free list of
// indices, reused between eviction and (re)allocation rather than
// reallocated, the way Carmen's backend/pagepool.go reuses its freePages
// slice across evictions and loads.
type PagePool struct {
	capacity int
	free     []int // stack of currently-free page indices
}

// NewPagePool creates a pool with `capacity` usable pages (indices
// 1..capacity), all initially free.
func NewPagePool(capacity int) *PagePool {
	free := make([]int, capacity)
	for i := 0; i < capacity; i++ {
		// Populate in descending order so AcquireFreePages hands out the
		// lowest indices first, which keeps test output and traces
		// deterministic and easy to read.
		free[i] = capacity - i
	}
	return &PagePool{capacity: capacity, free: free}
}

// AcquireFreePages returns exactly n pages, or (nil, false) if the pool
// does not currently have n free pages. The request is atomic and
// all-or-nothing: a failed request leaves the pool's free list untouched.
func (p *PagePool) AcquireFreePages(n int) ([]Page, bool) {
	if n == 0 {
		return []Page{}, true
	}
	if n < 0 || len(p.free) < n {
		return nil, false
	}
	pages := make([]Page, n)
	for i := 0; i < n; i++ {
		idx := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		pages[i] = Page{Index: idx}
	}
	return pages, true
}

// FreePages returns pages to the pool, making them available to future
// AcquireFreePages calls.
func (p *PagePool) FreePages(pages []Page) {
	for _, page := range pages {
		p.free = append(p.free, page.Index)
	}
}

// AvailablePages reports the number of pages currently free.
func (p *PagePool) AvailablePages() int {
	return len(p.free)
}

// Capacity returns the total number of usable pages this pool was
// constructed with.
func (p *PagePool) Capacity() int {
	return p.capacity
}
