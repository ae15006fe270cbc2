package model

type conflictCheckerImplementation struct{}

func (checker *conflictCheckerImplementation) Conflicts(candidate *Group, schedule []Selection) bool {
	for day, candidateBlocks := range candidate.Pattern {
		if len(candidateBlocks) == 0 {
			continue
		}

		for _, selection := range schedule {
			committedBlocks := selection.Group.Pattern[day]
			// Every pair is tested, since blocks within one group are not assumed to be disjoint
			for _, candidateBlock := range candidateBlocks {
				for _, committedBlock := range committedBlocks {
					if candidateBlock.Overlaps(committedBlock) {
						return true
					}
				}
			}
		}
	}
	return false
}
