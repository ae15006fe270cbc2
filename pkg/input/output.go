package input

import "github.com/limaJavier/coursescheduling/pkg/model"

// FromGroup converts a group back into its raw form, with lower-case day names and HH:MM clocks. Inactive days are omitted
func FromGroup(group model.Group) RawGroup {
	rawGroup := RawGroup{Name: group.Name, Schedule: make(map[string][]RawTimeBlock)}
	for _, day := range group.Pattern.Days() {
		for _, block := range group.Pattern[day] {
			rawGroup.Schedule[day.String()] = append(rawGroup.Schedule[day.String()], RawTimeBlock{
				Start: block.Start.String(),
				End:   block.End.String(),
			})
		}
	}
	return rawGroup
}
