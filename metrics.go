package linkedvec

// Stats is a point-in-time snapshot of the container's size and memory
// accounting.
type Stats struct {
	Len         int     // live elements
	TrueLen     int     // backing slots, live plus free
	Capacity    int     // reserved backing-slice capacity
	FreeSlots   int     // recycled slots awaiting reuse
	MemUsed     uintptr // estimated bytes actively used
	TrueMemUsed uintptr // estimated bytes reserved
}

// Stats returns a snapshot of the container's current accounting. Because
// slots are recycled rather than released, TrueLen and the memory figures
// track the high-water mark of the container, not its current length.
func (l *LinkedVector[T]) Stats() Stats {
	return Stats{
		Len:         l.length,
		TrueLen:     len(l.data),
		Capacity:    cap(l.data),
		FreeSlots:   len(l.free),
		MemUsed:     l.MemUsed(),
		TrueMemUsed: l.TrueMemUsed(),
	}
}
