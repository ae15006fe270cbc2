package main

import (
	"fmt"

	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newSpaceCommand(app *application) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "space",
		Short: "Print the size of the search space of the input courses without searching it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.loadCourses(file)
			if err != nil {
				return err
			}

			groups := lo.SumBy(courses, func(course model.Course) int { return len(course.Groups) })
			space := model.SearchSpace(courses)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Courses: %v\n", len(courses))
			fmt.Fprintf(out, "Groups: %v\n", groups)
			fmt.Fprintf(out, "Search space: %v\n", space)
			fmt.Fprintf(out, "Within limit: %v\n", space <= app.cfg.Search.MaxSpace)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the input file (.csv or .json)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
