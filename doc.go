// Package linkedvec implements a singly linked list whose nodes live in a
// single growable slice.
//
// A LinkedVector keeps linked-list semantics (O(1) pushes at both ends, O(1)
// removal once a position has been located, logical order independent of
// physical slot) while storing every node contiguously. Links are slice
// indices rather than pointers, and vacated slots are recycled through a free
// list instead of being deallocated, so the backing slice only ever grows.
//
// # Quick Start
//
//	lv := linkedvec.New[int]()
//	lv.PushBack(100)
//	lv.PushBack(200)
//	lv.PushFront(300) // logical order is now 300 100 200
//
//	v, ok := lv.PopFront() // v == 300
//	removed, err := lv.Delete(1)
//
// # Trade-offs
//
// Positional operations (At, Delete) walk the chain from the head and cost
// O(index). There is no back link, so there is no O(1) PopBack; use Delete
// with the last index when tail removal is required. The backing slice never
// shrinks: the memory high-water mark equals the largest simultaneous element
// count ever reached, which MemUsed and TrueMemUsed make visible.
//
// A LinkedVector is not safe for concurrent use. Element pointers returned by
// Head, Tail, and At are invalidated by any later structural mutation, since
// slot recycling overwrites storage in place.
package linkedvec
