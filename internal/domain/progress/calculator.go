// Package progress holds the pure completion arithmetic the dashboards use.
// No I/O happens here; callers fetch tasks and progress records first.
package progress

import (
	"math"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
)

// PercentComplete returns the rounded percentage of tasks that have a
// completed progress record. An empty task list yields 0, not a division
// error. Progress rows pointing at tasks outside the given list are ignored,
// so callers can pass pre-filtered task sets (per category or per stage) and
// the full progress list.
func PercentComplete(tasks []*entity.Task, records []*entity.UserProgress) int {
	if len(tasks) == 0 {
		return 0
	}

	completed := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Completed {
			completed[rec.TaskID] = true
		}
	}

	done := 0
	for _, t := range tasks {
		if completed[t.ID] {
			done++
		}
	}

	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}
