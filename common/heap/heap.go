// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package heap provides a generic priority queue built on top of
// container/heap.
package heap

import "container/heap"

// Heap is a priority queue of elements of type T. The zero value is an
// empty heap ready to use with the default comparator (natural order of
// comparable reads is not assumed; a zero Heap compares elements as equal
// until a comparator is installed via New). Use New to provide a custom
// ordering.
type Heap[T any] struct {
	cmp   func(a, b T) int
	items []T
}

// New creates an empty Heap using the given comparator. cmp(a, b) should
// return a positive number if a is to be popped before b, a negative
// number if b is to be popped before a, and zero if the two are
// interchangeable with respect to pop order.
func New[T any](cmp func(a, b T) int) Heap[T] {
	return Heap[T]{cmp: cmp}
}

// Add inserts a new element into the heap.
func (h *Heap[T]) Add(value T) {
	if h.cmp == nil {
		h.cmp = func(a, b T) int { return 0 }
	}
	heap.Push((*heapAdapter[T])(h), value)
}

// Peek returns the element that would be popped next without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the element with the highest priority.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	res := heap.Pop((*heapAdapter[T])(h)).(T)
	return res, true
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// ContainsFunc reports whether any element in the heap satisfies the
// given predicate. This is an O(n) scan, intended for tests and
// diagnostics rather than hot paths.
func (h *Heap[T]) ContainsFunc(predicate func(T) bool) bool {
	for _, item := range h.items {
		if predicate(item) {
			return true
		}
	}
	return false
}

// heapAdapter adapts Heap[T] to container/heap.Interface.
type heapAdapter[T any] Heap[T]

func (h *heapAdapter[T]) Len() int { return len(h.items) }

func (h *heapAdapter[T]) Less(i, j int) bool {
	return h.cmp(h.items[i], h.items[j]) > 0
}

func (h *heapAdapter[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *heapAdapter[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *heapAdapter[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}
