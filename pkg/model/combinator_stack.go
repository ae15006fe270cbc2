package model

type stackFrame struct {
	course    int // Index of the course this frame picks a group for
	nextGroup int // Index of the next group to try
}

type stackCombinator struct {
	checker ConflictChecker
}

func (combinator *stackCombinator) Combine(courses []Course) []Combination {
	combinations := make([]Combination, 0)
	if len(courses) == 0 {
		return combinations
	}

	schedule := make([]Selection, 0, len(courses))
	stack := make([]stackFrame, 0, len(courses)+1)
	stack = append(stack, stackFrame{course: 0})

	// Drops the top frame together with the selection that led to it (the root frame has none)
	pop := func() {
		stack = stack[:len(stack)-1]
		if len(schedule) > 0 {
			schedule = schedule[:len(schedule)-1]
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		//** All courses assigned
		if top.course == len(courses) {
			combinations = append(combinations, snapshot(schedule))
			pop()
			continue
		}

		//** Every group of the current course has been tried
		course := &courses[top.course]
		if top.nextGroup >= len(course.Groups) {
			pop()
			continue
		}

		//** Try next group
		group := &course.Groups[top.nextGroup]
		top.nextGroup++
		if combinator.checker.Conflicts(group, schedule) {
			continue
		}

		schedule = append(schedule, Selection{Course: course, Group: group})
		stack = append(stack, stackFrame{course: top.course + 1})
	}

	return combinations
}

func (combinator *stackCombinator) Verify(combinations []Combination, courses []Course) bool {
	return verify(combinations, courses)
}
