package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock value expressed in minutes since midnight
type Clock uint16

const (
	MinutesPerHour = 60
	// Midnight at the end of the day; only valid as the end of a block
	EndOfDay Clock = 24 * MinutesPerHour
)

// Parses an "HH:MM" string into a Clock. "24:00" is accepted and denotes the end of the day
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock \"%v\": expected HH:MM", value)
	}

	hours, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hours in clock \"%v\": %w", value, err)
	}
	minutes, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in clock \"%v\": %w", value, err)
	}

	if minutes >= MinutesPerHour {
		return 0, fmt.Errorf("invalid clock \"%v\": minutes must be smaller than 60", value)
	}
	clock := Clock(hours*MinutesPerHour + minutes)
	if clock > EndOfDay {
		return 0, fmt.Errorf("invalid clock \"%v\": it lies beyond the end of the day", value)
	}
	return clock, nil
}

func (clock Clock) String() string {
	return fmt.Sprintf("%02d:%02d", clock/MinutesPerHour, clock%MinutesPerHour)
}

// TimeBlock is a half-open interval [Start, End) within a single day
type TimeBlock struct {
	Start Clock
	End   Clock
}

func NewTimeBlock(start, end Clock) (TimeBlock, error) {
	if start >= end {
		return TimeBlock{}, fmt.Errorf("time block %v-%v must start before it ends", start, end)
	} else if end > EndOfDay {
		return TimeBlock{}, fmt.Errorf("time block %v-%v exceeds the end of the day", start, end)
	}
	return TimeBlock{Start: start, End: end}, nil
}

// Checks whether both blocks share at least one minute. Touching endpoints do not overlap
func (block TimeBlock) Overlaps(other TimeBlock) bool {
	return block.Start < other.End && other.Start < block.End
}

func (block TimeBlock) String() string {
	return fmt.Sprintf("%v-%v", block.Start, block.End)
}
