package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/coursescheduling/pkg/model"
)

type CombinationRow struct {
	Combination int    `csv:"combination"`
	Course      string `csv:"course"`
	Color       string `csv:"color"`
	Group       string `csv:"group"`
	Day         string `csv:"day"`
	Start       string `csv:"start"`
	End         string `csv:"end"`
}

// ExportCombinations writes one row per time block of every selection, numbering combinations from 1.
// Blocks are listed in weekday order
func ExportCombinations(out io.Writer, combinations []model.Combination, delim rune) error {
	rows := make([]CombinationRow, 0)
	for i, combination := range combinations {
		for _, selection := range combination {
			for _, day := range selection.Group.Pattern.Days() {
				for _, block := range selection.Group.Pattern[day] {
					rows = append(rows, CombinationRow{
						Combination: i + 1,
						Course:      selection.Course.Name,
						Color:       selection.Course.Color,
						Group:       selection.Group.Name,
						Day:         day.String(),
						Start:       block.Start.String(),
						End:         block.End.String(),
					})
				}
			}
		}
	}

	writer := csv.NewWriter(out)
	writer.Comma = delim
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("cannot write combinations: %w", err)
	}
	return nil
}
