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

import "github.com/renxida/shortfin-kvcache/common"

// ErrInvalidArgument is returned by NewCache when tokensPerPage is not
// positive.
const ErrInvalidArgument = common.ConstError("kvcache: invalid argument")

// ErrCacheAllocationFailure is returned by Cache.AcquirePagesForTokens
// when, after attempting LRU eviction of unreferenced leaves, the page
// pool still cannot supply the requested number of pages.
const ErrCacheAllocationFailure = common.ConstError("kvcache: failed to acquire pages even after attempting eviction from LRU leaves")
