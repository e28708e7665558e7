package progress_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/progress"
)

func makeTasks(n int) []*entity.Task {
	tasks := make([]*entity.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, &entity.Task{ID: fmt.Sprintf("task-%d", i)})
	}
	return tasks
}

func completedFor(tasks []*entity.Task, n int) []*entity.UserProgress {
	recs := make([]*entity.UserProgress, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, &entity.UserProgress{TaskID: tasks[i].ID, Completed: true})
	}
	return recs
}

func TestPercentComplete_EmptyTaskList(t *testing.T) {
	assert.Equal(t, 0, progress.PercentComplete(nil, nil))
	assert.Equal(t, 0, progress.PercentComplete([]*entity.Task{}, []*entity.UserProgress{}))
}

func TestPercentComplete_ThreeOfFive(t *testing.T) {
	tasks := makeTasks(5)
	recs := completedFor(tasks, 3)
	assert.Equal(t, 60, progress.PercentComplete(tasks, recs))
}

func TestPercentComplete_Rounds(t *testing.T) {
	tasks := makeTasks(3)

	assert.Equal(t, 33, progress.PercentComplete(tasks, completedFor(tasks, 1)), "1/3 rounds down")
	assert.Equal(t, 67, progress.PercentComplete(tasks, completedFor(tasks, 2)), "2/3 rounds up")
	assert.Equal(t, 100, progress.PercentComplete(tasks, completedFor(tasks, 3)))
}

func TestPercentComplete_IgnoresIncompleteRecords(t *testing.T) {
	tasks := makeTasks(4)
	recs := []*entity.UserProgress{
		{TaskID: tasks[0].ID, Completed: true},
		{TaskID: tasks[1].ID, Completed: false}, // toggled back off
	}
	assert.Equal(t, 25, progress.PercentComplete(tasks, recs))
}

func TestPercentComplete_IgnoresRecordsOutsideTaskSet(t *testing.T) {
	tasks := makeTasks(2)
	recs := []*entity.UserProgress{
		{TaskID: tasks[0].ID, Completed: true},
		{TaskID: "task-from-another-category", Completed: true},
	}
	assert.Equal(t, 50, progress.PercentComplete(tasks, recs))
}
