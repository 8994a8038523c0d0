package vec

// Funcs bundles the lifecycle operations of an element type. Every hook is
// optional; a nil hook means the trivial behavior is correct for T:
//
//   - New: the zero value
//   - Copy: plain assignment
//   - Move: plain assignment, leaving the source zeroed
//   - Dispose: nothing to release
//
// Types whose values own resources or share referenced state set the hooks
// they need. Note the asymmetry in the signatures: Copy may fail, Move may
// not. The vector exploits this when it migrates elements to a new buffer
// (see Reserve).
type Funcs[T any] struct {
	// New default-constructs an element, used by NewLen and Resize.
	New func() (T, error)

	// Copy produces an independent copy of an element.
	Copy func(T) (T, error)

	// Move transfers an element out of *src. It must leave *src in a
	// state that Dispose accepts.
	Move func(*T) T

	// Dispose releases whatever the element owns. The slot is zeroed
	// afterwards regardless, so Dispose never needs to.
	Dispose func(*T)
}

// moveDuringGrowth reports whether buffer migration uses Move. Move is
// chosen when it cannot fail (structural here, since a Move hook returns no
// error) or when the type has no Copy at all. Otherwise migration copies,
// so a failure partway through can roll back with the originals intact.
func (f *Funcs[T]) moveDuringGrowth() bool {
	return f.Move != nil || f.Copy == nil
}

func (f *Funcs[T]) construct() (T, error) {
	if f.New != nil {
		return f.New()
	}
	var zero T
	return zero, nil
}

func (f *Funcs[T]) copyOf(x T) (T, error) {
	if f.Copy != nil {
		return f.Copy(x)
	}
	return x, nil
}

func (f *Funcs[T]) moveFrom(src *T) T {
	if f.Move != nil {
		return f.Move(src)
	}
	x := *src
	var zero T
	*src = zero
	return x
}

func (f *Funcs[T]) dispose(p *T) {
	if f.Dispose != nil {
		f.Dispose(p)
	}
	var zero T
	*p = zero
}
