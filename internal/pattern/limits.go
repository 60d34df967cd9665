package pattern

// EditLimits bounds the edits a single candidate match may spend, per
// spec.md §3. It is built incrementally via the chained setters below and
// frozen by finalize(), which implements the zero-default rule of
// spec.md §9(c): if Edits is left unset, every individually-unset kind
// defaults to 0, so a bare EditLimits{} (or one that only sets e.g.
// Substitutions) forbids every other kind of edit outright.
type EditLimits struct {
	edits         *int
	insertions    *int
	deletions     *int
	substitutions *int
	swaps         *int
}

// NewEditLimits returns an EditLimits with every bound unset. Call the
// chained setters to configure it, then pass it to Builder.GlobalLimits
// or Pattern options; finalize() is applied automatically at Table
// construction time.
func NewEditLimits() *EditLimits {
	return &EditLimits{}
}

func intPtr(n int) *int { return &n }

// Edits sets the total edit budget, summed across all kinds.
func (l *EditLimits) Edits(n int) *EditLimits {
	l.edits = intPtr(n)
	return l
}

// Insertions sets the maximum number of insertions.
func (l *EditLimits) Insertions(n int) *EditLimits {
	l.insertions = intPtr(n)
	return l
}

// Deletions sets the maximum number of deletions.
func (l *EditLimits) Deletions(n int) *EditLimits {
	l.deletions = intPtr(n)
	return l
}

// Substitutions sets the maximum number of substitutions.
func (l *EditLimits) Substitutions(n int) *EditLimits {
	l.substitutions = intPtr(n)
	return l
}

// Swaps sets the maximum number of transpositions.
func (l *EditLimits) Swaps(n int) *EditLimits {
	l.swaps = intPtr(n)
	return l
}

// finalize applies spec.md §9(c)'s defaulting rule: when Edits was never
// set, every kind that was also never set is pinned to 0. Idempotent.
func (l *EditLimits) finalize() {
	if l == nil || l.edits != nil {
		return
	}
	if l.insertions == nil {
		l.insertions = intPtr(0)
	}
	if l.deletions == nil {
		l.deletions = intPtr(0)
	}
	if l.substitutions == nil {
		l.substitutions = intPtr(0)
	}
	if l.swaps == nil {
		l.swaps = intPtr(0)
	}
}

// Validate reports an error if any configured bound is negative.
func (l *EditLimits) Validate() error {
	if l == nil {
		return nil
	}
	for name, v := range map[string]*int{
		"edits": l.edits, "insertions": l.insertions,
		"deletions": l.deletions, "substitutions": l.substitutions,
		"swaps": l.swaps,
	} {
		if v != nil && *v < 0 {
			return &LimitError{Field: name, Value: *v}
		}
	}
	return nil
}

// Counts is the running tally of edits spent along one BFS path,
// mirroring spec.md §4.3's state fields.
type Counts struct {
	Insertions    int
	Deletions     int
	Substitutions int
	Swaps         int
}

// Total returns the sum of all edit kinds.
func (c Counts) Total() int {
	return c.Insertions + c.Deletions + c.Substitutions + c.Swaps
}

// Allows reports whether c satisfies every bound l states, per spec.md
// §3: "a candidate is valid iff all stated bounds are satisfied". A nil
// EditLimits means "only exact matches are accepted" (spec.md §9(c)).
func (l *EditLimits) Allows(c Counts) bool {
	if l == nil {
		return c.Total() == 0
	}
	if l.edits != nil && c.Total() > *l.edits {
		return false
	}
	if l.insertions != nil && c.Insertions > *l.insertions {
		return false
	}
	if l.deletions != nil && c.Deletions > *l.deletions {
		return false
	}
	if l.substitutions != nil && c.Substitutions > *l.substitutions {
		return false
	}
	if l.swaps != nil && c.Swaps > *l.swaps {
		return false
	}
	return true
}

// CanInsert reports whether spending one more insertion from counts c
// would still satisfy l. Used by the kernel's limit look-ahead pruning
// (spec.md §4.3) before enqueueing an insertion transition.
func (l *EditLimits) CanInsert(c Counts) bool {
	next := c
	next.Insertions++
	return l.Allows(next)
}

// CanDelete is CanInsert's counterpart for deletions.
func (l *EditLimits) CanDelete(c Counts) bool {
	next := c
	next.Deletions++
	return l.Allows(next)
}

// CanSubstitute is CanInsert's counterpart for substitutions.
func (l *EditLimits) CanSubstitute(c Counts) bool {
	next := c
	next.Substitutions++
	return l.Allows(next)
}

// CanSwap is CanInsert's counterpart for swaps.
func (l *EditLimits) CanSwap(c Counts) bool {
	next := c
	next.Swaps++
	return l.Allows(next)
}

// ExactOnly reports whether l admits nothing but zero-edit matches: a nil
// l (spec.md §9(c)), an explicit zero total budget, or, when no total
// budget is set, every individual kind pinned to zero. A nonzero total
// budget always reports false, even if every kind is also pinned to zero.
func (l *EditLimits) ExactOnly() bool {
	if l == nil {
		return true
	}
	if l.edits != nil {
		return *l.edits == 0
	}
	// finalize() has run by the time Table freezes patterns, so every
	// kind is non-nil here.
	return zeroOrNil(l.insertions) && zeroOrNil(l.deletions) &&
		zeroOrNil(l.substitutions) && zeroOrNil(l.swaps)
}

func zeroOrNil(n *int) bool {
	return n == nil || *n == 0
}

// LimitError reports an invalid (negative) bound on an EditLimits.
type LimitError struct {
	Field string
	Value int
}

func (e *LimitError) Error() string {
	return "fuzzyac: edit limit " + e.Field + " must be non-negative"
}
