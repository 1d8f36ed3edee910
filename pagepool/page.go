// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package pagepool implements the page pool external collaborator
// described by the cache specification: a fixed array of physical pages
// exposing only acquire-n/free/available-count. It owns no knowledge of
// prefix sharing or eviction policy — that is the cache's job.
package pagepool

// Page is an opaque handle to a fixed-size slot of KV state, as consumed
// by the cache. The cache never inspects or mutates the referenced
// tensor memory; it only moves Page values between the pool, its trie,
// and Allocations.
type Page struct {
	// Index uniquely identifies this page within its owning pool.
	Index int
	// TokenOffset is the absolute token offset this page was filled for,
	// set by the caller once it publishes tokens into the page. The pool
	// itself never writes this field.
	TokenOffset int
	// TokenCount is the number of tokens actually held by this page,
	// set by the caller. The pool itself never writes this field.
	TokenCount int
}
