package linkedvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Check validates the structural invariants linking the live chain, the free
// list, and the backing slice:
//
//   - every backing slot is either live or free, with no overlap
//   - head, tail, and length agree on emptiness
//   - following next from head visits exactly Len slots, ends at tail, and
//     contains no cycle
//   - free-list entries are in range and listed once
//
// It returns nil when the structure is sound. Check is O(TrueLen) and meant
// for tests and debugging, not the hot path.
func (l *LinkedVector[T]) Check() error {
	if len(l.data) != l.length+len(l.free) {
		return fmt.Errorf("linkedvec: slot count mismatch: %d slots, %d live + %d free",
			len(l.data), l.length, len(l.free))
	}
	if (l.head == noIndex) != (l.length == 0) || (l.tail == noIndex) != (l.length == 0) {
		return fmt.Errorf("linkedvec: head/tail/length disagree: head=%d tail=%d length=%d",
			l.head, l.tail, l.length)
	}

	live := roaring.New()
	last := noIndex
	cur := l.head
	for steps := 0; cur != noIndex; steps++ {
		if steps == l.length {
			return fmt.Errorf("linkedvec: live chain longer than length %d", l.length)
		}
		if cur < 0 || cur >= len(l.data) {
			return fmt.Errorf("linkedvec: link %d outside backing slice of %d slots", cur, len(l.data))
		}
		u := uint32(cur)
		if live.Contains(u) {
			return fmt.Errorf("linkedvec: cycle through slot %d", cur)
		}
		live.Add(u)
		if !l.data[cur].ok {
			return fmt.Errorf("linkedvec: live slot %d holds no value", cur)
		}
		last = cur
		cur = l.data[cur].next
	}
	if got := int(live.GetCardinality()); got != l.length {
		return fmt.Errorf("linkedvec: walked %d live slots, length is %d", got, l.length)
	}
	if l.length > 0 && last != l.tail {
		return fmt.Errorf("linkedvec: chain ends at slot %d, tail is %d", last, l.tail)
	}

	freeSet := roaring.New()
	for _, idx := range l.free {
		if idx < 0 || idx >= len(l.data) {
			return fmt.Errorf("linkedvec: free slot %d outside backing slice of %d slots", idx, len(l.data))
		}
		u := uint32(idx)
		if freeSet.Contains(u) {
			return fmt.Errorf("linkedvec: slot %d on free list twice", idx)
		}
		freeSet.Add(u)
	}
	if live.Intersects(freeSet) {
		both := roaring.And(live, freeSet)
		return fmt.Errorf("linkedvec: slot %d is both live and free", both.Minimum())
	}

	return nil
}
