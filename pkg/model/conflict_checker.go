package model

type ConflictChecker interface {
	// Checks whether committing the candidate group would overlap, on any shared weekday, with a group already in the schedule
	Conflicts(candidate *Group, schedule []Selection) bool
}

func NewConflictChecker() ConflictChecker {
	return &conflictCheckerImplementation{}
}
