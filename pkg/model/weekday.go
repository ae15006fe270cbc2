package model

import (
	"fmt"
	"strings"
)

type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// Returns the weekday matching name (case-insensitive English name)
func ParseWeekday(name string) (Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for day, dayName := range weekdayNames {
		if dayName == name {
			return Weekday(day), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday \"%v\"", name)
}

func (day Weekday) String() string {
	if day >= DaysPerWeek {
		return fmt.Sprintf("weekday(%d)", uint8(day))
	}
	return weekdayNames[day]
}
