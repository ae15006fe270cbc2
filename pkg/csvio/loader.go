package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/coursescheduling/pkg/input"
	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/samber/lo"
)

// CourseRow is one time block of a group. A group meeting on several days (or several times a day) spans several rows
type CourseRow struct {
	Course string `csv:"course"`
	Color  string `csv:"color"`
	Group  string `csv:"group"`
	Day    string `csv:"day"`
	Start  string `csv:"start"`
	End    string `csv:"end"`
}

// LoadCourses reads course rows separated by delim. Courses and groups keep the order in which they first appear
func LoadCourses(in io.Reader, delim rune) ([]model.Course, error) {
	reader := csv.NewReader(in)
	reader.Comma = delim
	reader.TrimLeadingSpace = true

	rows := []CourseRow{}
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse course rows: %w", err)
	}

	return input.Process(rowsToRawInput(rows))
}

func rowsToRawInput(rows []CourseRow) input.RawInput {
	rawInput := input.RawInput{Courses: []input.RawCourse{}}

	for _, row := range rows {
		//** Find course or initialize it if it does not exist
		_, courseIndex, ok := lo.FindIndexOf(rawInput.Courses, func(course input.RawCourse) bool {
			return course.Name == row.Course
		})
		if !ok {
			rawInput.Courses = append(rawInput.Courses, input.RawCourse{Name: row.Course, Color: row.Color, Groups: []input.RawGroup{}})
			courseIndex = len(rawInput.Courses) - 1
		}
		course := &rawInput.Courses[courseIndex]
		if course.Color == "" {
			course.Color = row.Color
		}

		//** Find group or initialize it if it does not exist
		_, groupIndex, ok := lo.FindIndexOf(course.Groups, func(group input.RawGroup) bool {
			return group.Name == row.Group
		})
		if !ok {
			course.Groups = append(course.Groups, input.RawGroup{Name: row.Group, Schedule: make(map[string][]input.RawTimeBlock)})
			groupIndex = len(course.Groups) - 1
		}
		group := &course.Groups[groupIndex]

		//** Add block (rows without a day describe a group with no meetings)
		if row.Day == "" && row.Start == "" && row.End == "" {
			continue
		}
		group.Schedule[row.Day] = append(group.Schedule[row.Day], input.RawTimeBlock{Start: row.Start, End: row.End})
	}

	return rawInput
}
