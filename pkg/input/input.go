package input

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawTimeBlock struct {
	Start string `mapstructure:"start" json:"start" validate:"required"`
	End   string `mapstructure:"end" json:"end" validate:"required"`
}

type RawGroup struct {
	Name     string                    `mapstructure:"name" json:"name" validate:"required"`
	Schedule map[string][]RawTimeBlock `mapstructure:"schedule" json:"schedule" validate:"dive,dive"`
}

type RawCourse struct {
	Name   string     `mapstructure:"name" json:"name" validate:"required"`
	Color  string     `mapstructure:"color" json:"color,omitempty"`
	Groups []RawGroup `mapstructure:"groups" json:"groups" validate:"required,min=1,dive"`
}

type RawInput struct {
	Courses []RawCourse `mapstructure:"courses" json:"courses" validate:"required,min=1,dive"`
}

var validate = validator.New()

func FromJson(file string) ([]model.Course, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}
	return FromBytes(bytes)
}

func FromBytes(bytes []byte) ([]model.Course, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot parse input json: %w", err)
	}

	var rawInput RawInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return nil, fmt.Errorf("cannot decode input: %w", err)
	}
	return Process(rawInput)
}

// Checks the shape of the raw input: at least one course, every course with a name and at least one group,
// every group with a name and every time block with both ends
func Validate(rawInput RawInput) error {
	if err := validate.Struct(rawInput); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

// Validates the raw input and converts it into courses ready to be combined.
// Fails on unknown weekdays, malformed clocks, blocks that do not start before they end and duplicated names
func Process(rawInput RawInput) ([]model.Course, error) {
	if err := Validate(rawInput); err != nil {
		return nil, err
	}

	courses := make([]model.Course, 0, len(rawInput.Courses))
	for _, rawCourse := range rawInput.Courses {
		// Make sure course names are unique
		if lo.ContainsBy(courses, func(course model.Course) bool { return course.Name == rawCourse.Name }) {
			return nil, fmt.Errorf("duplicate course \"%v\"", rawCourse.Name)
		}

		course := model.Course{
			Name:   rawCourse.Name,
			Color:  rawCourse.Color,
			Groups: make([]model.Group, 0, len(rawCourse.Groups)),
		}

		for _, rawGroup := range rawCourse.Groups {
			// Make sure group names are unique within the course
			if lo.ContainsBy(course.Groups, func(group model.Group) bool { return group.Name == rawGroup.Name }) {
				return nil, fmt.Errorf("course \"%v\": duplicate group \"%v\"", rawCourse.Name, rawGroup.Name)
			}

			pattern, err := processSchedule(rawGroup.Schedule)
			if err != nil {
				return nil, fmt.Errorf("course \"%v\": group \"%v\": %w", rawCourse.Name, rawGroup.Name, err)
			}
			course.Groups = append(course.Groups, model.Group{Name: rawGroup.Name, Pattern: pattern})
		}

		courses = append(courses, course)
	}
	return courses, nil
}

func processSchedule(schedule map[string][]RawTimeBlock) (model.WeeklyPattern, error) {
	var pattern model.WeeklyPattern
	// Day names are visited in sorted order so that blocks of a day spelled more than once (e.g. "Monday" and "monday") keep a stable order
	for _, dayName := range slices.Sorted(maps.Keys(schedule)) {
		day, err := model.ParseWeekday(dayName)
		if err != nil {
			return pattern, err
		}
		for _, rawBlock := range schedule[dayName] {
			block, err := processBlock(rawBlock)
			if err != nil {
				return pattern, fmt.Errorf("%v: %w", day, err)
			}
			pattern[day] = append(pattern[day], block)
		}
	}
	return pattern, nil
}

func processBlock(rawBlock RawTimeBlock) (model.TimeBlock, error) {
	start, err := model.ParseClock(rawBlock.Start)
	if err != nil {
		return model.TimeBlock{}, err
	}
	end, err := model.ParseClock(rawBlock.End)
	if err != nil {
		return model.TimeBlock{}, err
	}
	return model.NewTimeBlock(start, end)
}
