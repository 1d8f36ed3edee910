// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package kvcache implements a prefix-sharing paged cache for LLM
// attention key/value state: a trie keyed by consecutive token blocks
// mapping any token prefix to the sequence of pages realizing it, with
// reference-counted allocation, publication, and LRU eviction.
//
// The cache is specified as a single-threaded, serialized component: all
// exported methods run to completion without internal suspension, and a
// multi-threaded host must serialize access behind a single mutex or a
// dedicated actor.
package kvcache
