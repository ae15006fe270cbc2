package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCourses(t *testing.T) {
	for _, scenario := range getScenarios() {
		courses := generateCourses(rand.New(rand.NewSource(7)), scenario)

		require.Len(t, courses, scenario.Courses)
		for _, course := range courses {
			assert.Len(t, course.Groups, scenario.Groups)
		}
		// Same seed, same courses
		assert.Equal(t, courses, generateCourses(rand.New(rand.NewSource(7)), scenario))
	}
}

func TestMeasureDisjointScenario(t *testing.T) {
	scenario := Scenario{Type: disjoint, Courses: 4, Groups: 3, Meetings: 1}
	courses := generateCourses(rand.New(rand.NewSource(1)), scenario)

	for _, newCombinator := range combinators {
		_, combinations, verified := measure(newCombinator(model.NewConflictChecker()), courses)
		assert.Equal(t, 81, combinations)
		assert.True(t, verified)
	}
}

func TestDisjointScenariosHaveNoConflicts(t *testing.T) {
	for _, scenario := range getScenarios() {
		if scenario.Type != disjoint {
			continue
		}

		courses := generateCourses(rand.New(rand.NewSource(1)), scenario)
		space := model.SearchSpace(courses)
		for strategy, newCombinator := range combinators {
			_, combinations, verified := measure(newCombinator(model.NewConflictChecker()), courses)
			assert.Equal(t, space, uint64(combinations), "%v courses, %v groups, strategy %v", scenario.Courses, scenario.Groups, strategy)
			assert.True(t, verified)
		}
	}
}

func TestToCsv(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "results.csv")

	toCsv([]BenchmarkResult{{Strategy: "stack", Scenario: "random", Courses: 2, Groups: 2, Meetings: 1, SearchSpace: 4, Combinations: 3, Duration: 10, Verified: true}}, outFile)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Equal(t, []string{
		"Strategy,Scenario,Courses,Groups,Meetings,SearchSpace,Combinations,Duration(us),Verified",
		"stack,random,2,2,1,4,3,10,true",
	}, lines)
}
