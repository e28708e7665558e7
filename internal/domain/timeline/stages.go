// Package timeline holds the listing-journey stage model: the fixed stage
// set, its ordering and the transition policy applied by the timeline
// mutator.
package timeline

// The four journey stages, in progression order.
const (
	StageExploration = "exploration"
	StagePreparation = "preparation"
	StageApplication = "application"
	StageListed      = "listed"
)

// Stages lists the valid stages in progression order.
var Stages = []string{StageExploration, StagePreparation, StageApplication, StageListed}

// stageOrder maps a stage to its position in the progression.
var stageOrder = map[string]int{
	StageExploration: 0,
	StagePreparation: 1,
	StageApplication: 2,
	StageListed:      3,
}

// IsValidStage reports whether s is one of the four journey stages.
func IsValidStage(s string) bool {
	_, ok := stageOrder[s]
	return ok
}

// IsBackward reports whether moving from current to next would move the
// company to an earlier stage. Unknown stages are never backward; they are
// rejected earlier by IsValidStage.
func IsBackward(current, next string) bool {
	c, okc := stageOrder[current]
	n, okn := stageOrder[next]
	if !okc || !okn {
		return false
	}
	return n < c
}
