package models

// RenamePair represents a single source to destination move
type RenamePair struct {
	From string
	To   string
}

// Plan is a validated batch of rename pairs
// Built by the plan package; immutable once constructed and consumed
// exactly once by the executor
type Plan struct {
	// Pairs holds the changed (from, to) pairs in original index order
	Pairs []RenamePair

	// FromSet contains every path of the original list, changed or not
	FromSet map[string]bool

	// ToSet contains every destination, asserted unique during validation
	ToSet map[string]bool
}

// IsNoOp reports whether the plan contains no changes to apply
func (p *Plan) IsNoOp() bool {
	return len(p.Pairs) == 0
}

// NeedsStaging reports whether the pair at index i must be staged through a
// temporary path: true when its source is also some other pair's destination,
// which covers direct swaps and longer cycles transitively
func (p *Plan) NeedsStaging(i int) bool {
	return p.ToSet[p.Pairs[i].From]
}

// StagingRecord tracks a source relocated to a temporary sibling during
// phase A. Records never outlive the apply call that created them
type StagingRecord struct {
	// Tmp is the temporary sibling path currently holding the file
	Tmp string

	// From is the original source path, used for rollback
	From string
}
