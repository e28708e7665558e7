package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asxpathway/pathway-api/internal/domain/timeline"
)

func TestIsValidStage(t *testing.T) {
	for _, s := range timeline.Stages {
		assert.True(t, timeline.IsValidStage(s), s)
	}
	assert.False(t, timeline.IsValidStage(""))
	assert.False(t, timeline.IsValidStage("delisted"))
	assert.False(t, timeline.IsValidStage("Exploration"), "stages are lowercase")
}

func TestIsBackward(t *testing.T) {
	assert.False(t, timeline.IsBackward(timeline.StageExploration, timeline.StagePreparation))
	assert.False(t, timeline.IsBackward(timeline.StagePreparation, timeline.StagePreparation),
		"staying on the same stage is not a backward move")
	assert.False(t, timeline.IsBackward(timeline.StageExploration, timeline.StageListed),
		"skipping forward is allowed")

	assert.True(t, timeline.IsBackward(timeline.StageListed, timeline.StageApplication))
	assert.True(t, timeline.IsBackward(timeline.StagePreparation, timeline.StageExploration))
}

func TestIsBackward_UnknownStages(t *testing.T) {
	// Unknown values are handled by IsValidStage; IsBackward stays permissive.
	assert.False(t, timeline.IsBackward("bogus", timeline.StageListed))
	assert.False(t, timeline.IsBackward(timeline.StageListed, "bogus"))
}
