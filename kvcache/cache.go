// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package kvcache

import (
	"fmt"
	"log"

	"golang.org/x/exp/maps"

	"github.com/renxida/shortfin-kvcache/common/heap"
	"github.com/renxida/shortfin-kvcache/pagepool"
)

// PagePool is the external collaborator the cache allocates physical
// pages from and returns them to (spec.md §1, §6). It is satisfied by
// *pagepool.PagePool in production and by a gomock double in tests of
// the eviction-retry path.
type PagePool interface {
	AcquireFreePages(n int) ([]pagepool.Page, bool)
	FreePages(pages []pagepool.Page)
	AvailablePages() int
}

// Cache is the trie-structured, prefix-sharing paged KV cache
// coordinator (spec.md §3). It owns the trie root, the set of current
// leaves, and the external page pool link.
type Cache struct {
	root          *TrieNode
	leaves        map[*TrieNode]struct{}
	pool          PagePool
	tokensPerPage int
	clock         clock
}

// NewCache constructs a Cache backed by the given page pool, sharing
// prefixes at the granularity of tokensPerPage tokens. tokensPerPage must
// be positive.
func NewCache(pool PagePool, tokensPerPage int) (*Cache, error) {
	if tokensPerPage <= 0 {
		return nil, fmt.Errorf("%w: tokensPerPage must be positive, got %d", ErrInvalidArgument, tokensPerPage)
	}
	return &Cache{
		root:          newRoot(),
		leaves:        make(map[*TrieNode]struct{}),
		pool:          pool,
		tokensPerPage: tokensPerPage,
	}, nil
}

// TokensPerPage returns the page granularity this cache was constructed
// with.
func (c *Cache) TokensPerPage() int {
	return c.tokensPerPage
}

// Root returns the trie root. The root is never in Leaves, never
// evicted, and its ref count is never consulted by eviction.
func (c *Cache) Root() *TrieNode {
	return c.root
}

// Leaves returns the current leaf set in no particular order. Intended
// for tests and diagnostics; the cache itself never needs a stable
// iteration order over this set on the hot path, only membership
// queries, so the underlying storage remains a plain map.
func (c *Cache) Leaves() []*TrieNode {
	return maps.Keys(c.leaves)
}

// match segments tokens into consecutive tokensPerPage blocks and walks
// the trie from the root following an exact child for each block in
// order, stopping at the first unmatched or partial block (spec.md
// §4.2). It updates access_time on every node it descends into — this is
// the LRU signal — but never touches ref counts or the leaf set.
func (c *Cache) match(tokens []Token) (*TrieNode, []pagepool.Page) {
	var matched []pagepool.Page
	cur := c.root

	for i := 0; i+c.tokensPerPage <= len(tokens); i += c.tokensPerPage {
		block := tokens[i : i+c.tokensPerPage]
		child, found := cur.getChild(block)
		if !found {
			break
		}
		child.access = c.clock.now()
		cur = child
		matched = append(matched, cur.page)
	}

	return cur, matched
}

// AcquirePagesForTokens matches the longest cached prefix of tokens,
// pins it, and acquires pages for the uncached suffix plus
// extraTokenSlots worth of headroom, evicting LRU leaves if the pool
// cannot satisfy the request outright (spec.md §4.3).
//
// If the pool still cannot supply the requested pages after eviction,
// ErrCacheAllocationFailure is returned. Matching this design's inherited
// contract (spec.md §4.3 step 6), the ref count increment on the matched
// node from step 2 is deliberately NOT undone on this failure path: the
// caller never receives an Allocation to release, so there is no handle
// through which a host could be asked to undo the pin, and spec.md is
// explicit that no code path decrements it here.
func (c *Cache) AcquirePagesForTokens(tokens []Token, extraTokenSlots int) (*Allocation, error) {
	node, matched := c.match(tokens)
	node.refCount++

	cachedTokens := len(matched) * c.tokensPerPage
	needTokens := len(tokens) - cachedTokens + extraTokenSlots
	if needTokens < 0 {
		needTokens = 0
	}
	needPages := ceilDiv(needTokens, c.tokensPerPage)

	newPages, ok := c.pool.AcquireFreePages(needPages)
	if !ok {
		deficit := needPages - c.pool.AvailablePages()
		evicted := c.evictPages(deficit)
		if evicted < deficit {
			log.Printf("kvcache: eviction freed only %d of %d requested pages", evicted, deficit)
		}
		newPages, ok = c.pool.AcquireFreePages(needPages)
		if !ok {
			return nil, fmt.Errorf("%w", ErrCacheAllocationFailure)
		}
	}

	return &Allocation{
		cache:              c,
		tokens:             tokens,
		lastCachedNode:     node,
		cachedPages:        matched,
		newlyAcquiredPages: newPages,
		startIndex:         cachedTokens,
	}, nil
}

// evictPages runs LRU eviction over unreferenced leaves until maxPages
// pages have been collected or no eligible leaf remains (spec.md §4.6).
// Eviction only ever touches unreferenced subtrees, never the root, and
// bubbles up as subtrees become childless.
func (c *Cache) evictPages(maxPages int) int {
	if maxPages <= 0 {
		return 0
	}

	queue := heap.New(func(a, b *TrieNode) int {
		switch {
		case a.access.before(b.access):
			return 1
		case b.access.before(a.access):
			return -1
		default:
			return 0
		}
	})
	for leaf := range c.leaves {
		if leaf.refCount == 0 {
			queue.Add(leaf)
		}
	}

	var evicted []pagepool.Page
	for len(evicted) < maxPages {
		leaf, ok := queue.Pop()
		if !ok {
			break
		}

		evicted = append(evicted, leaf.page)
		parent := leaf.parent
		leaf.unlink()
		delete(c.leaves, leaf)

		if parent != c.root && len(parent.children) == 0 {
			c.leaves[parent] = struct{}{}
			if parent.refCount == 0 {
				queue.Add(parent)
			}
		}
	}

	if len(evicted) > 0 {
		c.pool.FreePages(evicted)
	}

	return len(evicted)
}

func ceilDiv(numerator, denominator int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + denominator - 1) / denominator
}
