package model

// Combinator enumerates every way to pick exactly one group per course such that no two picked groups overlap.
//
// Combinations are produced depth-first in input order: earlier groups of earlier courses appear in earlier combinations.
// The explored space is bounded by SearchSpace(courses), which grows exponentially with the number of courses; no cap is
// imposed on the amount of combinations, so callers must reject inputs they deem too large before invoking Combine.
//
// Example:
//
//	combinator := model.NewBacktrackingCombinator(model.NewConflictChecker())
//	if model.SearchSpace(courses) > limit {
//		return errTooLarge
//	}
//	combinations := combinator.Combine(courses)
type Combinator interface {
	// Returns every conflict-free combination. An empty result means no conflict-free assignment exists
	Combine(courses []Course) []Combination

	// Checks whether every combination covers all courses in order and is free of conflicts
	Verify(combinations []Combination, courses []Course) bool
}

// Recursive combinator: commits a group, descends to the next course and undoes the commit on return
func NewBacktrackingCombinator(checker ConflictChecker) Combinator {
	if checker == nil {
		checker = NewConflictChecker()
	}
	return &backtrackingCombinator{checker: checker}
}

// Iterative combinator: keeps an explicit stack of frames instead of recursing, so the call stack does not grow
// with the number of courses. Enumeration order is identical to the backtracking combinator's
func NewStackCombinator(checker ConflictChecker) Combinator {
	if checker == nil {
		checker = NewConflictChecker()
	}
	return &stackCombinator{checker: checker}
}
