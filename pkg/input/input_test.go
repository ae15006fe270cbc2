package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJson = `{
	"courses": [
		{
			"name": "Calculus",
			"color": "#ff0000",
			"groups": [
				{"name": "A1", "schedule": {"monday": [{"start": "08:00", "end": "09:50"}], "Wednesday": [{"start": "08:00", "end": "09:50"}]}},
				{"name": "A2", "schedule": {"tuesday": [{"start": "10:00", "end": "11:50"}]}}
			]
		},
		{
			"name": "Physics",
			"groups": [
				{"name": "B1", "schedule": {"monday": [{"start": "13:00", "end": "14:50"}, {"start": "15:00", "end": "16:00"}]}}
			]
		}
	]
}`

func TestFromBytes(t *testing.T) {
	//** Act
	courses, err := FromBytes([]byte(validJson))

	//** Assert
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, "Calculus", courses[0].Name)
	assert.Equal(t, "#ff0000", courses[0].Color)
	require.Len(t, courses[0].Groups, 2)
	assert.Equal(t, "A1", courses[0].Groups[0].Name)
	assert.Equal(t, []model.TimeBlock{{Start: 480, End: 590}}, courses[0].Groups[0].Pattern[model.Monday])
	assert.Equal(t, []model.TimeBlock{{Start: 480, End: 590}}, courses[0].Groups[0].Pattern[model.Wednesday])
	assert.Equal(t, []model.Weekday{model.Monday, model.Wednesday}, courses[0].Groups[0].Pattern.Days())
	assert.Equal(t, []model.Weekday{model.Tuesday}, courses[0].Groups[1].Pattern.Days())

	assert.Equal(t, "Physics", courses[1].Name)
	assert.Empty(t, courses[1].Color)
	assert.Len(t, courses[1].Groups[0].Pattern[model.Monday], 2)
}

func TestFromJson(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(file, []byte(validJson), 0666))

	courses, err := FromJson(file)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	_, err = FromJson(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestProcessRejectsInvalidInput(t *testing.T) {
	monday := func(start, end string) map[string][]RawTimeBlock {
		return map[string][]RawTimeBlock{"monday": {{Start: start, End: end}}}
	}

	scenarios := map[string]RawInput{
		"no courses":      {},
		"unnamed course":  {Courses: []RawCourse{{Groups: []RawGroup{{Name: "A1"}}}}},
		"no groups":       {Courses: []RawCourse{{Name: "A"}}},
		"unnamed group":   {Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{Schedule: monday("08:00", "09:00")}}}}},
		"missing end":     {Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{Name: "A1", Schedule: monday("08:00", "")}}}}},
		"unknown day":     {Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{Name: "A1", Schedule: map[string][]RawTimeBlock{"funday": {{Start: "08:00", End: "09:00"}}}}}}}},
		"malformed clock": {Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{Name: "A1", Schedule: monday("8h", "09:00")}}}}},
		"reversed block":  {Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{Name: "A1", Schedule: monday("10:00", "09:00")}}}}},
		"empty block":     {Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{Name: "A1", Schedule: monday("09:00", "09:00")}}}}},
		"duplicate course": {Courses: []RawCourse{
			{Name: "A", Groups: []RawGroup{{Name: "A1"}}},
			{Name: "A", Groups: []RawGroup{{Name: "A1"}}},
		}},
		"duplicate group": {Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{Name: "A1"}, {Name: "A1"}}}}},
	}

	for name, rawInput := range scenarios {
		t.Run(name, func(t *testing.T) {
			courses, err := Process(rawInput)
			assert.Error(t, err)
			assert.Nil(t, courses)
		})
	}
}

func TestValidateExposesFieldErrors(t *testing.T) {
	err := Validate(RawInput{Courses: []RawCourse{{Name: "A"}}})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	assert.Equal(t, "Groups", validationErrors[0].Field())
}

func TestValidateReachesTimeBlocks(t *testing.T) {
	err := Validate(RawInput{Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{
		Name:     "A1",
		Schedule: map[string][]RawTimeBlock{"monday": {{Start: "08:00"}}},
	}}}}})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "End", validationErrors[0].Field())
	assert.Equal(t, "required", validationErrors[0].Tag())
}

func TestProcessErrorNamesCourseAndGroup(t *testing.T) {
	_, err := Process(RawInput{Courses: []RawCourse{{Name: "Calculus", Groups: []RawGroup{{
		Name:     "A1",
		Schedule: map[string][]RawTimeBlock{"friday": {{Start: "12:00", End: "11:00"}}},
	}}}}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `course "Calculus": group "A1": friday`)
}

func TestProcessMergesDaySpellings(t *testing.T) {
	courses, err := Process(RawInput{Courses: []RawCourse{{Name: "A", Groups: []RawGroup{{
		Name: "A1",
		Schedule: map[string][]RawTimeBlock{
			"monday": {{Start: "10:00", End: "11:00"}},
			"Monday": {{Start: "08:00", End: "09:00"}},
		},
	}}}}})

	require.NoError(t, err)
	// "Monday" sorts before "monday"
	assert.Equal(t, []model.TimeBlock{{Start: 480, End: 540}, {Start: 600, End: 660}}, courses[0].Groups[0].Pattern[model.Monday])
}

func TestFromGroupRoundTrip(t *testing.T) {
	courses, err := FromBytes([]byte(validJson))
	require.NoError(t, err)

	rawGroup := FromGroup(courses[0].Groups[0])
	assert.Equal(t, RawGroup{
		Name: "A1",
		Schedule: map[string][]RawTimeBlock{
			"monday":    {{Start: "08:00", End: "09:50"}},
			"wednesday": {{Start: "08:00", End: "09:50"}},
		},
	}, rawGroup)

	processed, err := Process(RawInput{Courses: []RawCourse{{Name: "Calculus", Groups: []RawGroup{rawGroup}}}})
	require.NoError(t, err)
	assert.Equal(t, courses[0].Groups[0], processed[0].Groups[0])
}
