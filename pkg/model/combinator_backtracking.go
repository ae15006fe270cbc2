package model

type backtrackingCombinator struct {
	checker ConflictChecker
}

func (combinator *backtrackingCombinator) Combine(courses []Course) []Combination {
	combinations := make([]Combination, 0)
	if len(courses) == 0 {
		return combinations
	}

	// Capacity is fixed up front so that appending a selection never reallocates the shared backing array
	schedule := make([]Selection, 0, len(courses))
	combinator.combine(courses, 0, schedule, &combinations)
	return combinations
}

func (combinator *backtrackingCombinator) combine(
	courses []Course,
	currentCourse int,
	schedule []Selection,
	combinations *[]Combination) {

	if currentCourse >= len(courses) {
		*combinations = append(*combinations, snapshot(schedule))
		return
	}

	course := &courses[currentCourse]
	for i := range course.Groups {
		group := &course.Groups[i]
		if combinator.checker.Conflicts(group, schedule) {
			continue
		}

		// The callee sees the schedule with the new selection pushed; this frame's slice keeps its length,
		// hence the selection is popped as soon as the call returns
		combinator.combine(courses, currentCourse+1, append(schedule, Selection{Course: course, Group: group}), combinations)
	}
}

func (combinator *backtrackingCombinator) Verify(combinations []Combination, courses []Course) bool {
	return verify(combinations, courses)
}
