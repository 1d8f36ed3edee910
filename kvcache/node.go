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
	"encoding/binary"

	"github.com/renxida/shortfin-kvcache/pagepool"
)

// Token is a single token id in a sequence.
type Token int64

// blockKey is the map key under which a TrieNode is indexed in its
// parent's children. It is the token block's contents encoded as bytes
// (see blockKeyOf), not a hash: the encoding is exact, so two keys are
// equal only when their blocks are equal.
type blockKey string

// blockKeyOf derives the map key for a token block. Encoding each token
// as a fixed-width big-endian integer before concatenating keeps
// distinct blocks of the same total byte length from aliasing (e.g.
// tokens [1, 2] vs [12] cannot collide the way naive string-joining
// could).
func blockKeyOf(tokens []Token) blockKey {
	buf := make([]byte, 8*len(tokens))
	for i, t := range tokens {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(t))
	}
	return blockKey(buf)
}

// TrieNode is a node of the block trie (spec.md §3, §4.1). Every non-root
// node is bound one-to-one to a physical page and labeled by the exact
// token block that page holds. Nodes compare equal only by identity
// (pointer equality), never by token content: two distinct subtrees may
// legitimately carry children labeled with the same token block under
// different parents.
type TrieNode struct {
	tokens   []Token
	page     pagepool.Page
	children map[blockKey]*TrieNode
	parent   *TrieNode
	refCount int
	access   accessTime
}

// newRoot creates the trie root: empty tokens, a reserved sentinel page,
// no parent, refcount never consulted.
func newRoot() *TrieNode {
	return &TrieNode{
		children: make(map[blockKey]*TrieNode),
		page:     pagepool.Page{Index: pagepool.RootIndex},
	}
}

// Tokens returns the immutable token block this node represents. Empty
// only for the root.
func (n *TrieNode) Tokens() []Token {
	return n.tokens
}

// Page returns the physical page bound to this node.
func (n *TrieNode) Page() pagepool.Page {
	return n.page
}

// RefCount returns the number of live Allocations currently pointing at
// this node via their last-cached node.
func (n *TrieNode) RefCount() int {
	return n.refCount
}

// IsLeaf reports whether this node currently has no children.
func (n *TrieNode) IsLeaf() bool {
	return len(n.children) == 0
}

// createChild inserts a brand-new child under this node with the given
// token block and page. The caller must have already verified the block
// is absent from n.children; this never overwrites (spec.md §4.4
// "Collision policy" — the corrected behavior reuses an existing child
// instead of calling this).
//
// tokens is copied rather than retained: it is typically a subslice of
// the caller's own token sequence, and unlink later recomputes this
// node's key from the stored slice to remove it from n.children. A copy
// keeps that key stable even if the caller mutates or reuses its buffer.
func (n *TrieNode) createChild(tokens []Token, page pagepool.Page, now accessTime) *TrieNode {
	block := append([]Token(nil), tokens...)
	child := &TrieNode{
		tokens:   block,
		page:     page,
		children: make(map[blockKey]*TrieNode),
		parent:   n,
		access:   now,
	}
	n.children[blockKeyOf(block)] = child
	return child
}

// getChild looks up an existing child keyed by the given token block.
func (n *TrieNode) getChild(tokens []Token) (*TrieNode, bool) {
	child, found := n.children[blockKeyOf(tokens)]
	return child, found
}

// unlink removes this node from its parent's children mapping and clears
// the parent back-link. No-op on the root.
func (n *TrieNode) unlink() {
	if n.parent == nil {
		return
	}
	delete(n.parent.children, blockKeyOf(n.tokens))
	n.parent = nil
}
