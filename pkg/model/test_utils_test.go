package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Builds a time block from "HH:MM" strings, panicking on malformed input
func block(start, end string) TimeBlock {
	return lo.Must(NewTimeBlock(lo.Must(ParseClock(start)), lo.Must(ParseClock(end))))
}

func group(name string, days map[Weekday][]TimeBlock) Group {
	var pattern WeeklyPattern
	for day, blocks := range days {
		pattern[day] = blocks
	}
	return Group{Name: name, Pattern: pattern}
}

// Builds courses courses with groups groups each, where group j of course i takes the i-th hour of day j, hence no two
// groups of different courses ever overlap
func disjointCourses(courses, groups int) []Course {
	result := make([]Course, courses)
	for i := range courses {
		result[i] = Course{Name: fmt.Sprintf("course-%d", i)}
		for j := range groups {
			start := Clock(i * MinutesPerHour)
			result[i].Groups = append(result[i].Groups, group(fmt.Sprintf("group-%d-%d", i, j), map[Weekday][]TimeBlock{
				Weekday(j % DaysPerWeek): {{Start: start, End: start + MinutesPerHour}},
			}))
		}
	}
	return result
}

// Returns the group names of each combination
func names(combinations []Combination) [][]string {
	return lo.Map(combinations, func(combination Combination, _ int) []string {
		return lo.Map(combination, func(selection Selection, _ int) string { return selection.Group.Name })
	})
}
