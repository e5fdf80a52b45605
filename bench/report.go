package bench

import (
	"container/list"
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/gammazero/deque"

	"github.com/differental/linkedvec"
)

// MemReport estimates a container's heap usage. Used counts bytes the
// container actively occupies; Reserved counts bytes held from the
// allocator, including growth headroom.
type MemReport struct {
	Container string
	Len       int
	Used      uint64
	Reserved  uint64
}

// HumanUsed returns Used formatted with binary unit prefixes.
func (r MemReport) HumanUsed() string { return humanize.IBytes(r.Used) }

// HumanReserved returns Reserved formatted with binary unit prefixes.
func (r MemReport) HumanReserved() string { return humanize.IBytes(r.Reserved) }

func (r MemReport) String() string {
	return fmt.Sprintf("%s: len=%d used=%s reserved=%s",
		r.Container, r.Len, r.HumanUsed(), r.HumanReserved())
}

func sizeOf[T any]() uint64 {
	var v T
	return uint64(unsafe.Sizeof(v))
}

func reportLinkedVector[T any](lv *linkedvec.LinkedVector[T]) MemReport {
	return MemReport{
		Container: "LinkedVector",
		Len:       lv.Len(),
		Used:      uint64(lv.MemUsed()),
		Reserved:  uint64(lv.TrueMemUsed()),
	}
}

func reportSlice[T any](s []T) MemReport {
	sz := sizeOf[T]()
	return MemReport{
		Container: "slice",
		Len:       len(s),
		Used:      sz * uint64(len(s)),
		Reserved:  sz * uint64(cap(s)),
	}
}

// reportList approximates container/list the way the stdlib allocates it:
// one Element per value plus the boxed value itself. The list allocates per
// node, so there is no headroom to report.
func reportList[T any](l *list.List) MemReport {
	per := uint64(unsafe.Sizeof(list.Element{})) + sizeOf[T]()
	n := uint64(l.Len())
	return MemReport{
		Container: "container/list",
		Len:       l.Len(),
		Used:      per * n,
		Reserved:  per * n,
	}
}

func reportDeque[T any](d *deque.Deque[T]) MemReport {
	sz := sizeOf[T]()
	return MemReport{
		Container: "deque",
		Len:       d.Len(),
		Used:      sz * uint64(d.Len()),
		Reserved:  sz * uint64(d.Cap()),
	}
}
