package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/coursescheduling/pkg/config"
	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/samber/lo"
)

const (
	firstHour    = 7
	lastHour     = 19
	meetingLen   = 110 // Minutes
	disjointLen  = 50  // Minutes, shorter than the hour between consecutive disjoint courses
	schoolDays   = 5
	maxSpaceRuns = 5_000_000
)

type ScenarioType int

const (
	disjoint ScenarioType = iota
	random
)

var (
	scenarioTypes = map[ScenarioType]string{
		disjoint: "disjoint",
		random:   "random",
	}
	combinators = map[string]func(model.ConflictChecker) model.Combinator{
		config.StrategyBacktracking: model.NewBacktrackingCombinator,
		config.StrategyStack:        model.NewStackCombinator,
	}
)

type Scenario struct {
	Type     ScenarioType
	Courses  int
	Groups   int
	Meetings int
}

type BenchmarkResult struct {
	Strategy     string `csv:"Strategy"`
	Scenario     string `csv:"Scenario"`
	Courses      int    `csv:"Courses"`
	Groups       int    `csv:"Groups"`
	Meetings     int    `csv:"Meetings"`
	SearchSpace  uint64 `csv:"SearchSpace"`
	Combinations int    `csv:"Combinations"`
	Duration     int64  `csv:"Duration(us)"`
	Verified     bool   `csv:"Verified"`
}

func main() {
	seedPtr := flag.Int64("seed", 1, "Seed used to generate the random scenarios")
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seedPtr))
	scenarios := getScenarios()
	results := make([]BenchmarkResult, 0, len(scenarios)*len(combinators))

	for _, scenario := range scenarios {
		courses := generateCourses(rng, scenario)
		space := model.SearchSpace(courses)
		if space > maxSpaceRuns {
			log.Printf("Skipping scenario \"%v\" with %v courses and %v groups: search space %v is too large\n", scenarioTypes[scenario.Type], scenario.Courses, scenario.Groups, space)
			continue
		}

		for _, strategy := range config.ValidStrategies {
			fmt.Printf("Benchmarking scenario \"%v\" with %v courses, %v groups and strategy \"%v\"\n", scenarioTypes[scenario.Type], scenario.Courses, scenario.Groups, strategy)

			duration, combinations, verified := measure(combinators[strategy](model.NewConflictChecker()), courses)
			results = append(results, BenchmarkResult{
				Strategy:     strategy,
				Scenario:     scenarioTypes[scenario.Type],
				Courses:      scenario.Courses,
				Groups:       scenario.Groups,
				Meetings:     scenario.Meetings,
				SearchSpace:  space,
				Combinations: combinations,
				Duration:     duration,
				Verified:     verified,
			})
		}
	}

	toCsv(results, *outFilePtr)
}

func getScenarios() []Scenario {
	scenarios := make([]Scenario, 0)
	for _, tuple := range lo.Zip2([]int{4, 6, 8, 10}, []int{3, 4, 4, 3}) {
		courses, groups := tuple.A, tuple.B
		scenarios = append(scenarios,
			Scenario{Type: disjoint, Courses: courses, Groups: groups, Meetings: 1},
			Scenario{Type: random, Courses: courses, Groups: groups, Meetings: 2},
		)
	}
	return scenarios
}

// Builds the courses of a scenario. Disjoint scenarios never conflict (course i meets within its own hour), hence
// their amount of combinations equals their search space
func generateCourses(rng *rand.Rand, scenario Scenario) []model.Course {
	courses := make([]model.Course, scenario.Courses)
	for i := range courses {
		courses[i] = model.Course{
			Name:   fmt.Sprintf("course-%d", i),
			Groups: make([]model.Group, scenario.Groups),
		}

		for j := range courses[i].Groups {
			group := &courses[i].Groups[j]
			group.Name = fmt.Sprintf("group-%d", j)

			for range scenario.Meetings {
				var day model.Weekday
				var start model.Clock
				length := model.Clock(meetingLen)
				if scenario.Type == disjoint {
					day = model.Weekday(j % schoolDays)
					start = model.Clock((firstHour + i) * model.MinutesPerHour)
					length = disjointLen
				} else {
					day = model.Weekday(rng.Intn(schoolDays))
					start = model.Clock((firstHour + rng.Intn(lastHour-firstHour)) * model.MinutesPerHour)
				}
				group.Pattern[day] = append(group.Pattern[day], lo.Must(model.NewTimeBlock(start, start+length)))
			}
		}
	}
	return courses
}

func measure(combinator model.Combinator, courses []model.Course) (duration int64, combinations int, verified bool) {
	start := time.Now()
	result := combinator.Combine(courses)
	duration = time.Since(start).Microseconds()
	return duration, len(result), combinator.Verify(result, courses)
}

func toCsv(results []BenchmarkResult, outFile string) {
	file, err := os.Create(outFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV records: %v", err)
	}
}
