package model

import (
	"math"

	"github.com/samber/lo"
)

// Returns the number of group assignments a combinator may explore for the given courses (i.e. the product of
// group counts), saturating at math.MaxUint64. An empty course list has an empty search space
func SearchSpace(courses []Course) uint64 {
	if len(courses) == 0 {
		return 0
	}

	return lo.Reduce(courses, func(space uint64, course Course, _ int) uint64 {
		groups := uint64(len(course.Groups))
		if groups != 0 && space > math.MaxUint64/groups {
			return math.MaxUint64
		}
		return space * groups
	}, 1)
}

// Copies the schedule so that the combination does not alias the search's mutable state
func snapshot(schedule []Selection) Combination {
	combination := make(Combination, len(schedule))
	copy(combination, schedule)
	return combination
}

func verify(combinations []Combination, courses []Course) bool {
	for _, combination := range combinations {
		// Check that the combination has exactly one selection per course
		if len(combination) != len(courses) {
			return false
		}

		for i, selection := range combination {
			// Check that:
			// - The selection refers to the i-th course
			// - The selected group belongs to that course
			if selection.Course == nil || selection.Group == nil ||
				selection.Course.Name != courses[i].Name ||
				!lo.ContainsBy(courses[i].Groups, func(group Group) bool { return group.Name == selection.Group.Name }) {
				return false
			}

			// Check that no previous selection overlaps with this one on a shared day
			if lo.SomeBy(combination[:i], func(previous Selection) bool {
				return overlap(previous.Group, selection.Group)
			}) {
				return false
			}
		}
	}
	return true
}

func overlap(group1, group2 *Group) bool {
	for day := range DaysPerWeek {
		for _, block1 := range group1.Pattern[day] {
			for _, block2 := range group2.Pattern[day] {
				if block1.Overlaps(block2) {
					return true
				}
			}
		}
	}
	return false
}
