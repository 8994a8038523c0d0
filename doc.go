// Package vec implements a contiguous growable array that manages its own
// backing storage and element lifecycle.
//
// # Overview
//
// Vector keeps live elements in a contiguous prefix of an owned storage
// block, separately tracking the logical length and the physical capacity.
// Compared to a plain slice it offers:
//
//   - Explicit control over when allocation happens (Reserve, NewLen)
//   - Lifecycle hooks for element types that own resources or must be
//     copied deeply (Funcs)
//   - Defined rollback behavior when an element operation fails partway
//     through a mutation
//
// # Basic Usage
//
//	v := vec.New[int](vec.Funcs[int]{})
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.Insert(0, 9) // [9, 1, 2]
//	v.Erase(1)         // [9, 2]
//
// Appending doubles the capacity when it runs out (first growth goes from
// 0 to 1), so a sequence of appends is amortized O(1) each.
//
// # Element Lifecycle
//
// All hooks in Funcs are optional. Set Copy when plain assignment would
// alias shared state, Dispose when elements own resources, New for a
// non-zero default, and Move when transferring an element needs more than
// assignment. When elements must be migrated to a new storage block, the
// vector moves them if a Move hook exists or no Copy hook does, and copies
// them otherwise; only the copy path can fail, and it rolls back by
// disposing the partially filled new buffer, leaving the vector untouched.
//
// # Failure Safety
//
// Mutations report element-operation failures as errors. Reserve, Clone,
// NewLen, Emplace, Insert and PushBack leave the vector exactly as it was
// when they fail. Emplace materializes the new value into a temporary
// before any slot moves, so inserting a value derived from an element of
// the same vector is safe even when that element's slot is overwritten by
// the shift. Resize and the in-place path of CopyFrom document weaker
// guarantees on failure.
//
// # Important Notes
//
//   - Not goroutine-safe. Concurrent reads are fine only while no
//     mutation runs; synchronize externally otherwise.
//   - Capacity never shrinks except via Swap or MoveFrom.
//   - Out-of-range indexes, negative lengths and PopBack on an empty
//     vector are contract violations and panic.
//   - Go gives no recoverable signal for heap exhaustion; the vector
//     reports ErrTooLarge for capacity requests whose byte size cannot be
//     represented, before any element is touched.
package vec
