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

import "github.com/renxida/shortfin-kvcache/pagepool"

// Allocation is the handle returned to a caller requesting pages for a
// sequence (spec.md §3). It carries both previously-cached pages and
// newly-acquired pages, and mediates publication (grafting newly-filled
// pages into the shared trie) and release (dropping the caller's
// reference).
type Allocation struct {
	cache *Cache

	// tokens is the full token sequence this allocation represents.
	tokens []Token

	// lastCachedNode is the deepest trie node this allocation currently
	// holds a reference on.
	lastCachedNode *TrieNode

	// cachedPages are pages already in the trie and matched for this
	// sequence, in descent order.
	cachedPages []pagepool.Page

	// newlyAcquiredPages are pages freshly taken from the pool, not yet
	// grafted into the trie.
	newlyAcquiredPages []pagepool.Page

	// startIndex is the number of tokens covered by cachedPages at
	// creation time.
	startIndex int

	released bool
}

// Pages lists all pages in this allocation, cached pages followed by
// newly-acquired pages, in sequence order.
func (a *Allocation) Pages() []pagepool.Page {
	pages := make([]pagepool.Page, 0, len(a.cachedPages)+len(a.newlyAcquiredPages))
	pages = append(pages, a.cachedPages...)
	pages = append(pages, a.newlyAcquiredPages...)
	return pages
}

// LastCachedNode returns the deepest trie node this allocation currently
// holds a reference on.
func (a *Allocation) LastCachedNode() *TrieNode {
	return a.lastCachedNode
}

// StartIndex returns the number of tokens covered by cached pages at
// creation time, i.e. len(cachedPages) * tokensPerPage at the moment the
// allocation was created.
func (a *Allocation) StartIndex() int {
	return a.startIndex
}

// PublishPages makes the first upToPageIndex pages of this allocation
// visible to future matches by grafting them into the trie (spec.md
// §4.4). Publication is monotone: calling PublishPages with a value less
// than or equal to the already-published page count is a no-op, and
// successive calls may only publish strictly more.
func (a *Allocation) PublishPages(upToPageIndex int) {
	tokensPerPage := a.cache.tokensPerPage

	publishTokenCount := upToPageIndex * tokensPerPage
	if max := len(a.tokens); publishTokenCount > max {
		publishTokenCount = max
	}

	firstUncachedPageIndex := len(a.cachedPages)
	firstUncachedToken := firstUncachedPageIndex * tokensPerPage

	var blocks [][]Token
	for i := firstUncachedToken; i+tokensPerPage <= publishTokenCount; i += tokensPerPage {
		blocks = append(blocks, a.tokens[i:i+tokensPerPage])
	}
	if len(blocks) == 0 {
		return
	}
	if len(blocks) > len(a.newlyAcquiredPages) {
		blocks = blocks[:len(a.newlyAcquiredPages)]
	}

	cur := a.lastCachedNode
	publishedPages := make([]pagepool.Page, 0, len(blocks))
	now := a.cache.clock.now()
	for _, block := range blocks {
		page := a.newlyAcquiredPages[0]
		a.newlyAcquiredPages = a.newlyAcquiredPages[1:]

		// Collision policy (spec.md §4.4, corrected behavior): if a
		// child for this block already exists under cur (e.g. another
		// allocation published the identical prefix in between this
		// allocation's match and publish), descend into the existing
		// child instead of orphaning it, and return the now-redundant
		// new page to the pool. The existing child's page — not the
		// freed one — is what this allocation now holds for that block.
		if existing, found := cur.getChild(block); found {
			a.cache.pool.FreePages([]pagepool.Page{page})
			cur = existing
			publishedPages = append(publishedPages, existing.page)
			continue
		}

		wasLeaf := cur.IsLeaf()
		child := cur.createChild(block, page, now)
		if wasLeaf && cur != a.cache.root {
			// cur just gained its first child: it is no longer a leaf.
			delete(a.cache.leaves, cur)
		}
		publishedPages = append(publishedPages, page)
		cur = child
	}

	a.cachedPages = append(a.cachedPages, publishedPages...)

	// cur may be an existing internal node reached via the collision
	// path (line 108), not just a freshly created leaf: only add it to
	// leaves when it genuinely has no children.
	if cur != a.cache.root && cur.IsLeaf() {
		a.cache.leaves[cur] = struct{}{}
	}

	if cur != a.lastCachedNode {
		cur.refCount++
		a.lastCachedNode.refCount--
		a.lastCachedNode = cur
	}
}

// ReleasePages drops this allocation's reference to its last-cached
// node. It is idempotent: subsequent calls after the first are a no-op.
//
// Newly-acquired pages that were never published are not returned to the
// pool by this call (spec.md §4.5) — the host is responsible for either
// publishing them or freeing them explicitly via the pool.
func (a *Allocation) ReleasePages() {
	if a.released {
		return
	}
	a.lastCachedNode.refCount--
	a.released = true
}
