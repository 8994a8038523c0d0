package vec

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrTooLarge is returned when a requested capacity is so big that its byte
// size cannot be represented on this platform. The request is rejected
// before any storage is touched.
var ErrTooLarge = errors.New("vec: requested capacity too large")

// rawBuf owns backing storage sized for a fixed element capacity. It knows
// nothing about which slots hold live elements; the owning Vector tracks
// lifetime and keeps every slot outside its live prefix zeroed. The backing
// is a typed slice rather than raw bytes so that pointers inside elements
// stay visible to the garbage collector.
type rawBuf[T any] struct {
	slots []T // nil when capacity is 0
}

// newRawBuf acquires storage for exactly capacity elements. A capacity of 0
// acquires nothing. Negative capacity panics.
func newRawBuf[T any](capacity int) (rawBuf[T], error) {
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	if capacity == 0 {
		return rawBuf[T]{}, nil
	}
	var zero T
	if esz := unsafe.Sizeof(zero); esz > 0 && uintptr(capacity) > uintptr(math.MaxInt)/esz {
		return rawBuf[T]{}, ErrTooLarge
	}
	return rawBuf[T]{slots: make([]T, capacity)}, nil
}

// cap returns the number of element slots the storage can hold.
func (b *rawBuf[T]) cap() int {
	return len(b.slots)
}

// at returns the address of slot i. Valid for i in [0, cap).
func (b *rawBuf[T]) at(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vec: slot index out of range")
	}
	return &b.slots[i]
}

// prefix returns a view of slots [0, n).
func (b *rawBuf[T]) prefix(n int) []T {
	return b.slots[:n]
}

// swap exchanges ownership of two storages in O(1). No slot is touched.
func (b *rawBuf[T]) swap(other *rawBuf[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// release drops the backing storage. Safe to call on an empty buffer.
// Live elements must be disposed by the owner first.
func (b *rawBuf[T]) release() {
	b.slots = nil
}
