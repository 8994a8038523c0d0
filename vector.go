package vec

import "github.com/pkg/errors"

// Vector is a contiguous growable array with explicit control over element
// lifecycle and storage growth. It is a single-owner value: not
// goroutine-safe, and never shares its backing storage. Concurrent reads are
// fine as long as no mutation runs.
//
// The zero Vector is an empty vector with trivial element lifecycle, ready
// to use.
//
// Every mutating operation either completes or reports an error, and an
// error from an element Copy or New hook leaves the vector exactly as it
// was, except where a method documents a weaker guarantee.
type Vector[T any] struct {
	data rawBuf[T]
	size int
	fns  Funcs[T]

	grows          int   // reallocations performed
	migratedMoves  int64 // elements moved into a new buffer
	migratedCopies int64 // elements copied into a new buffer
}

// New returns an empty vector using the given lifecycle hooks.
// O(1), no allocation.
func New[T any](fns Funcs[T]) *Vector[T] {
	return &Vector[T]{fns: fns}
}

// NewLen returns a vector of n default-constructed elements. Capacity equals
// n exactly. If a New hook fails, elements constructed so far are disposed
// and no vector is returned. Negative n panics.
func NewLen[T any](fns Funcs[T], n int) (*Vector[T], error) {
	if n < 0 {
		panic("vec: negative length")
	}
	data, err := newRawBuf[T](n)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{data: data, fns: fns}
	for i := 0; i < n; i++ {
		x, err := v.fns.construct()
		if err != nil {
			v.disposeSlots(&v.data, 0, i)
			return nil, errors.Wrapf(err, "vec: construct element %d", i)
		}
		*v.data.at(i) = x
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of element slots the current storage can hold.
func (v *Vector[T]) Cap() int {
	return v.data.cap()
}

// At returns the element at index i. Out-of-range i panics.
func (v *Vector[T]) At(i int) T {
	return *v.Ptr(i)
}

// Ptr returns the address of the element at index i. The pointer is
// invalidated by any operation that grows or shifts the vector.
// Out-of-range i panics.
func (v *Vector[T]) Ptr(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.at(i)
}

// Set overwrites the element at index i with x, disposing the previous
// element. x is stored as-is; use SetCopy to store via the Copy hook.
func (v *Vector[T]) Set(i int, x T) {
	p := v.Ptr(i)
	v.fns.dispose(p)
	*p = x
}

// SetCopy overwrites the element at index i with a copy of x. On a Copy
// failure the element is unchanged.
func (v *Vector[T]) SetCopy(i int, x T) error {
	p := v.Ptr(i)
	c, err := v.fns.copyOf(x)
	if err != nil {
		return errors.Wrapf(err, "vec: copy into element %d", i)
	}
	v.fns.dispose(p)
	*p = c
	return nil
}

// CloneAt returns an independent copy of the element at index i.
func (v *Vector[T]) CloneAt(i int) (T, error) {
	c, err := v.fns.copyOf(*v.Ptr(i))
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "vec: copy element %d", i)
	}
	return c, nil
}

// View returns the live elements as a slice sharing the vector's storage.
// The view is invalidated by any operation that grows or shifts the vector,
// and writing through it bypasses the lifecycle hooks.
func (v *Vector[T]) View() []T {
	return v.data.prefix(v.size)
}

// Range calls fn for each element in index order until fn returns false.
func (v *Vector[T]) Range(fn func(i int, x T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, *v.data.at(i)) {
			return
		}
	}
}

// Clone returns a deep copy of the vector. The copy's capacity equals the
// source's length; no spare headroom is carried over.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	data, err := newRawBuf[T](v.size)
	if err != nil {
		return nil, err
	}
	out := &Vector[T]{data: data, fns: v.fns}
	for i := 0; i < v.size; i++ {
		x, err := v.fns.copyOf(*v.data.at(i))
		if err != nil {
			out.disposeSlots(&out.data, 0, i)
			out.data.release()
			return nil, errors.Wrapf(err, "vec: copy element %d", i)
		}
		*out.data.at(i) = x
	}
	out.size = v.size
	return out, nil
}

// Swap exchanges the contents of two vectors, storage, lifecycle hooks and
// growth counters included. O(1), never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
	v.fns, other.fns = other.fns, v.fns
	v.grows, other.grows = other.grows, v.grows
	v.migratedMoves, other.migratedMoves = other.migratedMoves, v.migratedMoves
	v.migratedCopies, other.migratedCopies = other.migratedCopies, v.migratedCopies
}

// MoveFrom takes over src's contents in O(1) by swapping. When v is empty
// this leaves src empty (move construction); otherwise src ends up holding
// v's former contents and disposes them per its hooks when cleared or
// collected.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.Swap(src)
}

// CopyFrom replaces v's contents with a deep copy of src. When src does not
// fit in v's current capacity, a full clone is built first and swapped in,
// so a failure leaves v untouched. Otherwise elements are copied in place:
// the overlapping prefix is copy-assigned, a longer src has its tail
// copy-constructed into spare capacity, a shorter one has v's excess tail
// disposed. A Copy failure on the in-place path leaves the prefix already
// overwritten (basic guarantee); the length is unchanged until the whole
// copy succeeds.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.Cap() {
		dup, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(dup)
		dup.Clear()
		dup.data.release()
		return nil
	}
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		x, err := v.fns.copyOf(*src.data.at(i))
		if err != nil {
			return errors.Wrapf(err, "vec: copy element %d", i)
		}
		p := v.data.at(i)
		v.fns.dispose(p)
		*p = x
	}
	if src.size >= v.size {
		for i := v.size; i < src.size; i++ {
			x, err := v.fns.copyOf(*src.data.at(i))
			if err != nil {
				v.disposeSlots(&v.data, v.size, i)
				return errors.Wrapf(err, "vec: copy element %d", i)
			}
			*v.data.at(i) = x
		}
	} else {
		v.disposeSlots(&v.data, src.size, v.size)
	}
	v.size = src.size
	return nil
}

// Reserve grows the storage to hold at least capacity elements. A capacity
// not above the current one is a no-op. Growth migrates live elements into
// the new storage by move when the lifecycle allows it, by copy otherwise;
// a copy failure disposes the partially filled new buffer and leaves the
// vector untouched.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.Cap() {
		return nil
	}
	next, err := newRawBuf[T](capacity)
	if err != nil {
		return err
	}
	if err := v.migrate(&next); err != nil {
		next.release()
		return err
	}
	v.commitGrowth(&next)
	return nil
}

// migrate fills next's slots [0, size) from the live elements, destroying
// the originals on success.
func (v *Vector[T]) migrate(next *rawBuf[T]) error {
	if v.fns.moveDuringGrowth() {
		for i := 0; i < v.size; i++ {
			*next.at(i) = v.fns.moveFrom(v.data.at(i))
		}
		v.migratedMoves += int64(v.size)
	} else {
		for i := 0; i < v.size; i++ {
			x, err := v.fns.copyOf(*v.data.at(i))
			if err != nil {
				v.disposeSlots(next, 0, i)
				return errors.Wrapf(err, "vec: copy element %d during growth", i)
			}
			*next.at(i) = x
		}
		v.migratedCopies += int64(v.size)
	}
	v.disposeSlots(&v.data, 0, v.size)
	return nil
}

// commitGrowth swaps the filled buffer in and drops the old one.
func (v *Vector[T]) commitGrowth(next *rawBuf[T]) {
	v.data.swap(next)
	next.release()
	v.grows++
}

// grownCap is the automatic growth policy: double, minimum 1.
func (v *Vector[T]) grownCap() int {
	if c := v.Cap(); c > 0 {
		return c * 2
	}
	return 1
}

// Resize sets the length to n. Growing reserves storage for exactly n and
// default-constructs the new slots; a New failure disposes the partial tail
// and leaves the length unchanged (capacity may have grown). Shrinking
// disposes the excess tail. Negative n panics.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative length")
	}
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			x, err := v.fns.construct()
			if err != nil {
				v.disposeSlots(&v.data, v.size, i)
				return errors.Wrapf(err, "vec: construct element %d", i)
			}
			*v.data.at(i) = x
		}
	case n < v.size:
		v.disposeSlots(&v.data, n, v.size)
	}
	v.size = n
	return nil
}

// PushBack appends a copy of x. Equivalent to Insert(Len(), x).
func (v *Vector[T]) PushBack(x T) error {
	return v.Insert(v.size, x)
}

// PushBackMove appends the element moved out of *x.
func (v *Vector[T]) PushBackMove(x *T) error {
	return v.InsertMove(v.size, x)
}

// EmplaceBack appends the element produced by build and returns its address.
func (v *Vector[T]) EmplaceBack(build func() (T, error)) (*T, error) {
	return v.Emplace(v.size, build)
}

// Insert places a copy of x at index i, shifting elements at [i, Len())
// one slot toward the back. i may be Len(), meaning append.
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.Emplace(i, func() (T, error) { return v.fns.copyOf(x) })
	return err
}

// InsertMove places the element moved out of *x at index i.
func (v *Vector[T]) InsertMove(i int, x *T) error {
	_, err := v.Emplace(i, func() (T, error) { return v.fns.moveFrom(x), nil })
	return err
}

// Emplace places the element produced by build at index i and returns its
// address. build runs before any slot is disturbed, so it may safely read
// elements of this same vector: the value is snapshotted into a temporary
// first. A build failure leaves the vector untouched; once the temporary
// exists, the in-place path cannot fail. The reallocating path gives the
// strong guarantee: a copy failure during migration disposes everything
// constructed in the new buffer and leaves the originals intact.
// i outside [0, Len()] panics.
func (v *Vector[T]) Emplace(i int, build func() (T, error)) (*T, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if build == nil {
		panic("vec: nil build function")
	}
	x, err := build()
	if err != nil {
		return nil, errors.Wrap(err, "vec: build element")
	}
	if v.size == v.Cap() {
		return v.placeGrow(i, x)
	}
	if i == v.size {
		*v.data.at(i) = v.fns.moveFrom(&x)
	} else {
		// Relocate the last element into the free tail slot, shift
		// [i, size-1) one slot back, then move the temporary in.
		*v.data.at(v.size) = v.fns.moveFrom(v.data.at(v.size - 1))
		for k := v.size - 1; k > i; k-- {
			*v.data.at(k) = v.fns.moveFrom(v.data.at(k - 1))
		}
		*v.data.at(i) = v.fns.moveFrom(&x)
	}
	v.size++
	return v.data.at(i), nil
}

// placeGrow inserts x at index i while migrating into doubled storage,
// leaving a hole at i for the new element.
func (v *Vector[T]) placeGrow(i int, x T) (*T, error) {
	next, err := newRawBuf[T](v.grownCap())
	if err != nil {
		v.fns.dispose(&x)
		return nil, err
	}
	if v.fns.moveDuringGrowth() {
		for k := 0; k < i; k++ {
			*next.at(k) = v.fns.moveFrom(v.data.at(k))
		}
		*next.at(i) = v.fns.moveFrom(&x)
		for k := i; k < v.size; k++ {
			*next.at(k + 1) = v.fns.moveFrom(v.data.at(k))
		}
		v.migratedMoves += int64(v.size)
	} else {
		for k := 0; k < i; k++ {
			c, err := v.fns.copyOf(*v.data.at(k))
			if err != nil {
				// The new element still lives in the temporary.
				v.fns.dispose(&x)
				v.disposeSlots(&next, 0, k)
				next.release()
				return nil, errors.Wrapf(err, "vec: copy element %d during growth", k)
			}
			*next.at(k) = c
		}
		*next.at(i) = v.fns.moveFrom(&x)
		for k := i; k < v.size; k++ {
			c, err := v.fns.copyOf(*v.data.at(k))
			if err != nil {
				// Slots [0, k+1) of the new buffer are live: the
				// migrated prefix, the new element, and the suffix
				// copied so far. Dispose them all; the originals
				// are untouched.
				v.disposeSlots(&next, 0, k+1)
				next.release()
				return nil, errors.Wrapf(err, "vec: copy element %d during growth", k)
			}
			*next.at(k + 1) = c
		}
		v.migratedCopies += int64(v.size)
	}
	v.disposeSlots(&v.data, 0, v.size)
	v.commitGrowth(&next)
	v.size++
	return v.data.at(i), nil
}

// Erase removes the element at index i, shifting elements at [i+1, Len())
// one slot toward the front. Relative order of the remaining elements is
// preserved. Out-of-range i panics.
func (v *Vector[T]) Erase(i int) {
	if i < 0 || i >= v.size {
		panic("vec: erase position out of range")
	}
	v.fns.dispose(v.data.at(i))
	for k := i; k < v.size-1; k++ {
		*v.data.at(k) = v.fns.moveFrom(v.data.at(k + 1))
	}
	if i < v.size-1 {
		// The shift left the last slot moved-from; dispose it.
		v.fns.dispose(v.data.at(v.size - 1))
	}
	v.size--
}

// PopBack removes the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.fns.dispose(v.data.at(v.size - 1))
	v.size--
}

// Clear disposes all live elements. Capacity is kept.
func (v *Vector[T]) Clear() {
	v.disposeSlots(&v.data, 0, v.size)
	v.size = 0
}

// Release disposes all live elements and drops the backing storage. Unlike
// Clear it returns the vector to its initial 0/0 state; it stays usable.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.release()
}

// disposeSlots disposes slots [i, j) of b using v's hooks.
func (v *Vector[T]) disposeSlots(b *rawBuf[T], i, j int) {
	for k := i; k < j; k++ {
		v.fns.dispose(b.at(k))
	}
}
