package vec

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 when the vector holds no storage.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Stats returns a snapshot of vector statistics.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:                v.size,
		Cap:                v.Cap(),
		Utilization:        v.Utilization(),
		Grows:              v.grows,
		MovedDuringGrowth:  v.migratedMoves,
		CopiedDuringGrowth: v.migratedCopies,
	}
}

// Stats contains statistical information about a vector. The growth
// counters record how past reallocations migrated elements, which also
// reveals whether the move or the copy policy was in effect.
type Stats struct {
	Len                int     // live elements
	Cap                int     // element slots in the current storage
	Utilization        float64 // ratio of live elements to capacity (0.0-1.0)
	Grows              int     // reallocations performed
	MovedDuringGrowth  int64   // elements migrated by move
	CopiedDuringGrowth int64   // elements migrated by copy
}
