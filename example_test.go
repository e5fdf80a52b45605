package linkedvec_test

import (
	"fmt"

	"github.com/differental/linkedvec"
)

func ExampleLinkedVector() {
	lv := linkedvec.New[uint64]()
	lv.PushBack(100)
	lv.PushBack(200)
	lv.PushFront(300)
	fmt.Println(lv)

	v, _ := lv.PopFront()
	fmt.Println(v)
	fmt.Println(lv)
	// Output:
	// 300 100 200
	// 300
	// 100 200
}

func ExampleLinkedVector_Delete() {
	lv := linkedvec.New[string]()
	lv.PushBack("a")
	lv.PushBack("b")
	lv.PushBack("c")

	removed, err := lv.Delete(1)
	fmt.Println(removed, err)
	fmt.Println(lv)

	_, err = lv.Delete(5)
	fmt.Println(err)
	// Output:
	// b <nil>
	// a c
	// linkedvec: index 5 out of range for length 2
}

func ExampleLinkedVector_TrueLen() {
	lv := linkedvec.New[int]()
	lv.PushBack(1)
	lv.PushBack(2)
	lv.PushBack(3)
	lv.PopFront()

	// The backing slice keeps the vacated slot for reuse.
	fmt.Println(lv.Len(), lv.TrueLen())

	lv.PushFront(9)
	fmt.Println(lv.Len(), lv.TrueLen())
	// Output:
	// 2 3
	// 3 3
}
