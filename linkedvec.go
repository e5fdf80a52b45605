package linkedvec

import (
	"fmt"
	"strings"
	"unsafe"
)

// noIndex marks an absent link. Slot indices are offsets into the backing
// slice, so no valid index is negative.
const noIndex = -1

// node is one slot of the backing slice. value is meaningful only while ok
// is set. next is meaningful only while the slot is on the live chain; a
// freed slot keeps whatever next it last had until it is reused.
type node[T any] struct {
	value T
	next  int
	ok    bool
}

// LinkedVector is an ordered container with linked-list semantics backed by
// one contiguous slice. The zero value is not usable; construct with New or
// NewWithCapacity.
type LinkedVector[T any] struct {
	data   []node[T]
	head   int
	tail   int
	free   []int
	length int
}

// New returns an empty LinkedVector.
func New[T any]() *LinkedVector[T] {
	return &LinkedVector[T]{head: noIndex, tail: noIndex}
}

// NewWithCapacity returns an empty LinkedVector whose backing slice has room
// for n slots before it needs to grow.
func NewWithCapacity[T any](n int) *LinkedVector[T] {
	return &LinkedVector[T]{
		data: make([]node[T], 0, n),
		head: noIndex,
		tail: noIndex,
	}
}

// Len returns the number of live elements.
func (l *LinkedVector[T]) Len() int {
	return l.length
}

// TrueLen returns the size of the backing slice: live slots plus recycled
// slots. It never decreases over the lifetime of the container.
func (l *LinkedVector[T]) TrueLen() int {
	return len(l.data)
}

// Cap returns the reserved capacity of the backing slice. It is at least
// TrueLen.
func (l *LinkedVector[T]) Cap() int {
	return cap(l.data)
}

// alloc places n in a recycled slot when one is available and appends a new
// slot otherwise. This is the only allocation path, which is what keeps the
// backing slice from ever shrinking.
func (l *LinkedVector[T]) alloc(n node[T]) int {
	if k := len(l.free); k > 0 {
		idx := l.free[k-1]
		l.free = l.free[:k-1]
		l.data[idx] = n
		return idx
	}
	l.data = append(l.data, n)
	return len(l.data) - 1
}

// take moves the value out of a slot, leaving the zero value behind so the
// backing slice does not pin memory the caller now owns.
func (l *LinkedVector[T]) take(idx int) T {
	v := l.data[idx].value
	var zero T
	l.data[idx].value = zero
	l.data[idx].ok = false
	return v
}

// PushFront inserts v before the current head. O(1) amortized.
func (l *LinkedVector[T]) PushFront(v T) {
	idx := l.alloc(node[T]{value: v, next: l.head, ok: true})
	l.head = idx
	if l.tail == noIndex {
		// first element
		l.tail = idx
	}
	l.length++
}

// PushBack appends v after the current tail. O(1) amortized.
func (l *LinkedVector[T]) PushBack(v T) {
	idx := l.alloc(node[T]{value: v, next: noIndex, ok: true})
	if l.tail == noIndex {
		l.head = idx
	} else {
		l.data[l.tail].next = idx
	}
	l.tail = idx
	l.length++
}

// PopFront removes and returns the head element. The second return value is
// false when the container is empty. O(1).
func (l *LinkedVector[T]) PopFront() (T, bool) {
	if l.head == noIndex {
		var zero T
		return zero, false
	}
	idx := l.head
	v := l.take(idx)
	l.head = l.data[idx].next
	if l.head == noIndex {
		l.tail = noIndex
	}
	l.free = append(l.free, idx)
	l.length--
	return v, true
}

// Head returns a pointer to the head element, or false when the container
// is empty. The pointer allows in-place mutation and is invalidated by any
// later structural mutation.
func (l *LinkedVector[T]) Head() (*T, bool) {
	if l.head == noIndex {
		return nil, false
	}
	return &l.data[l.head].value, true
}

// Tail returns a pointer to the tail element, or false when the container
// is empty. Same aliasing rules as Head.
func (l *LinkedVector[T]) Tail() (*T, bool) {
	if l.tail == noIndex {
		return nil, false
	}
	return &l.data[l.tail].value, true
}

// walkTo returns the physical slot of logical position i. The caller must
// have bounds-checked i against length; running off the chain before then
// means the structure is corrupt.
func (l *LinkedVector[T]) walkTo(i int) int {
	cur := l.head
	for ; i > 0; i-- {
		if cur == noIndex {
			panic("linkedvec: live chain shorter than length")
		}
		cur = l.data[cur].next
	}
	if cur == noIndex {
		panic("linkedvec: live chain shorter than length")
	}
	return cur
}

// At returns a pointer to the element at logical position index, walking the
// chain from the head. O(index). The pointer is invalidated by any later
// structural mutation.
func (l *LinkedVector[T]) At(index int) (*T, error) {
	if index < 0 || index >= l.length {
		return nil, &IndexError{Index: index, Len: l.length}
	}
	return &l.data[l.walkTo(index)].value, nil
}

// Delete removes and returns the element at logical position index. Position
// 0 behaves exactly like PopFront; any other position costs O(index) for the
// chain walk. The vacated slot goes on the free list for reuse.
func (l *LinkedVector[T]) Delete(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, &IndexError{Index: index, Len: l.length}
	}
	if index == 0 {
		v, _ := l.PopFront()
		return v, nil
	}

	prev := l.walkTo(index - 1)
	idx := l.data[prev].next
	if idx == noIndex {
		panic("linkedvec: live chain shorter than length")
	}

	l.data[prev].next = l.data[idx].next
	if idx == l.tail {
		// removed the last element; predecessor becomes the tail
		l.tail = prev
	}
	l.free = append(l.free, idx)
	l.length--
	return l.take(idx), nil
}

// MemUsed estimates the heap bytes actively used: one element plus one link
// per backing slot (live or free, since freed slots are never released) plus
// one index per free-list entry.
func (l *LinkedVector[T]) MemUsed() uintptr {
	var v T
	idx := unsafe.Sizeof(int(0))
	return (unsafe.Sizeof(v)+idx)*uintptr(len(l.data)) + idx*uintptr(len(l.free))
}

// TrueMemUsed estimates the heap bytes reserved, using the capacities of the
// backing slice and free list instead of their lengths. This models the real
// allocator footprint including growth headroom.
func (l *LinkedVector[T]) TrueMemUsed() uintptr {
	var v T
	idx := unsafe.Sizeof(int(0))
	return (unsafe.Sizeof(v)+idx)*uintptr(cap(l.data)) + idx*uintptr(cap(l.free))
}

// String renders the live elements in logical order, separated by spaces.
func (l *LinkedVector[T]) String() string {
	var sb strings.Builder
	for cur := l.head; cur != noIndex; cur = l.data[cur].next {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", l.data[cur].value)
	}
	return sb.String()
}
