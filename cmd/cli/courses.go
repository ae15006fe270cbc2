package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/coursescheduling/pkg/csvio"
	"github.com/limaJavier/coursescheduling/pkg/input"
	"github.com/limaJavier/coursescheduling/pkg/model"
)

var errSearchSpaceTooLarge = errors.New("search space too large")

// Reads courses from a CSV file (by extension) or from a JSON file otherwise
func (app *application) loadCourses(file string) ([]model.Course, error) {
	if file == "" {
		return nil, errors.New("an input file must be specified")
	}

	if !strings.EqualFold(filepath.Ext(file), ".csv") {
		return input.FromJson(file)
	}

	csvFile, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer csvFile.Close()
	return csvio.LoadCourses(csvFile, app.cfg.CSV.Delimiter)
}

// Rejects inputs whose search space exceeds maxSpace. Truncating the search instead would drop valid combinations
func guard(courses []model.Course, maxSpace uint64) (uint64, error) {
	space := model.SearchSpace(courses)
	if space > maxSpace {
		return space, fmt.Errorf("%w: %v group assignments exceed the limit of %v", errSearchSpaceTooLarge, space, maxSpace)
	}
	return space, nil
}
