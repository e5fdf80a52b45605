package linkedvec

import "iter"

// Values yields the live elements in logical order, head to tail. The
// container must not be structurally mutated during iteration.
func (l *LinkedVector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != noIndex; cur = l.data[cur].next {
			if !yield(l.data[cur].value) {
				return
			}
		}
	}
}

// All yields (logical position, element) pairs in forward order. Same
// mutation rules as Values.
func (l *LinkedVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for cur := l.head; cur != noIndex; cur = l.data[cur].next {
			if !yield(i, l.data[cur].value) {
				return
			}
			i++
		}
	}
}
