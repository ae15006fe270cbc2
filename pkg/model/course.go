package model

// WeeklyPattern holds the time blocks of every weekday, indexed by Weekday. A day without blocks is inactive
type WeeklyPattern [DaysPerWeek][]TimeBlock

// Active days of the pattern in weekday order
func (pattern WeeklyPattern) Days() []Weekday {
	days := make([]Weekday, 0, DaysPerWeek)
	for day, blocks := range pattern {
		if len(blocks) > 0 {
			days = append(days, Weekday(day))
		}
	}
	return days
}

// Group is one alternative for fulfilling a course. Its name is unique within the course
type Group struct {
	Name    string
	Pattern WeeklyPattern
}

// Course requires exactly one of its groups to be chosen. Color is display metadata carried through to the output
type Course struct {
	Name   string
	Color  string
	Groups []Group
}

// Selection pairs a course with the group chosen for it
type Selection struct {
	Course *Course
	Group  *Group
}

// Combination holds one selection per input course, in input order
type Combination []Selection
