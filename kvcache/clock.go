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

import "time"

// accessTime is the LRU ordering key of a TrieNode. It pairs a monotonic
// wall-clock reading with a strictly increasing sequence number so that
// two nodes touched within the same clock tick still compare unequal and
// deterministically (spec.md §9: "Ties in access_time are possible at
// high throughput; pick a deterministic secondary key").
type accessTime struct {
	when time.Time
	seq  uint64
}

// before reports whether a must be evicted before b under LRU order.
func (a accessTime) before(b accessTime) bool {
	if !a.when.Equal(b.when) {
		return a.when.Before(b.when)
	}
	return a.seq < b.seq
}

// clock hands out strictly increasing accessTime stamps, mirroring the
// tagCounter field of Carmen's state/mpt/node_cache.go.
type clock struct {
	counter uint64
}

func (c *clock) now() accessTime {
	c.counter++
	return accessTime{when: time.Now(), seq: c.counter}
}
