package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// fakeProgressRepo keys records by (user, task), mirroring the composite
// unique index: an upsert for an existing pair updates in place.
type fakeProgressRepo struct {
	records map[[2]string]*entity.UserProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[[2]string]*entity.UserProgress)}
}

func (f *fakeProgressRepo) ListByUser(userID string) ([]*entity.UserProgress, error) {
	out := []*entity.UserProgress{}
	for _, rec := range f.records {
		if rec.UserID == userID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) Upsert(rec *entity.UserProgress) (*entity.UserProgress, error) {
	key := [2]string{rec.UserID, rec.TaskID}
	stored, ok := f.records[key]
	if !ok {
		copied := *rec
		f.records[key] = &copied
		out := copied
		return &out, nil
	}
	stored.Completed = rec.Completed
	if rec.Completed {
		if stored.CompletedAt == nil {
			stored.CompletedAt = rec.CompletedAt
		}
	} else {
		stored.CompletedAt = nil
	}
	if rec.Notes != nil {
		stored.Notes = rec.Notes
	}
	out := *stored
	return &out, nil
}

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func newFakeTaskRepo(ids ...string) *fakeTaskRepo {
	f := &fakeTaskRepo{tasks: make(map[string]*entity.Task)}
	for _, id := range ids {
		f.tasks[id] = &entity.Task{ID: id, Title: "task " + id}
	}
	return f
}

func (f *fakeTaskRepo) Create(task *entity.Task) error { f.tasks[task.ID] = task; return nil }
func (f *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	return f.tasks[id], nil
}
func (f *fakeTaskRepo) List(repository.TaskFilter) ([]*entity.Task, error) { return nil, nil }
func (f *fakeTaskRepo) Update(*entity.Task) error                          { return nil }
func (f *fakeTaskRepo) Delete(id string) (bool, error)                     { return false, nil }

var _ repository.UserProgressRepository = (*fakeProgressRepo)(nil)
var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

func strPtr(s string) *string { return &s }

func TestSetStampsCompletionOnce(t *testing.T) {
	uc := NewUseCase(newFakeProgressRepo(), newFakeTaskRepo("task-1"))

	first, err := uc.Set("user-1", "task-1", dto.SetProgressRequest{Completed: true})
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)

	time.Sleep(2 * time.Millisecond)

	second, err := uc.Set("user-1", "task-1", dto.SetProgressRequest{Completed: true})
	require.NoError(t, err)
	require.NotNil(t, second.CompletedAt)
	assert.True(t, second.CompletedAt.Equal(*first.CompletedAt),
		"repeated completion must keep the first stamp")
}

func TestSetClearsTimestampOnUncomplete(t *testing.T) {
	uc := NewUseCase(newFakeProgressRepo(), newFakeTaskRepo("task-1"))

	done, err := uc.Set("user-1", "task-1", dto.SetProgressRequest{Completed: true})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	undone, err := uc.Set("user-1", "task-1", dto.SetProgressRequest{Completed: false})
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)
}

func TestSetKeepsSingleRecordPerPair(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewUseCase(repo, newFakeTaskRepo("task-1", "task-2"))

	for i := 0; i < 5; i++ {
		_, err := uc.Set("user-1", "task-1", dto.SetProgressRequest{Completed: i%2 == 0})
		require.NoError(t, err)
	}
	_, err := uc.Set("user-1", "task-2", dto.SetProgressRequest{Completed: true})
	require.NoError(t, err)

	records, err := uc.GetForUser("user-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSetKeepsNotesWhenOmitted(t *testing.T) {
	uc := NewUseCase(newFakeProgressRepo(), newFakeTaskRepo("task-1"))

	_, err := uc.Set("user-1", "task-1", dto.SetProgressRequest{Completed: true, Notes: strPtr("kickoff done")})
	require.NoError(t, err)

	rec, err := uc.Set("user-1", "task-1", dto.SetProgressRequest{Completed: false})
	require.NoError(t, err)
	require.NotNil(t, rec.Notes)
	assert.Equal(t, "kickoff done", *rec.Notes)
}

func TestSetUnknownTask(t *testing.T) {
	uc := NewUseCase(newFakeProgressRepo(), newFakeTaskRepo())

	rec, err := uc.Set("user-1", "no-such-task", dto.SetProgressRequest{Completed: true})
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetForUserUnknownUserIsEmpty(t *testing.T) {
	uc := NewUseCase(newFakeProgressRepo(), newFakeTaskRepo())

	records, err := uc.GetForUser("nobody")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
