package usecase

import (
	"github.com/google/uuid"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// TaskUseCase applies business rules for journey tasks.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase builds the use case with the persistence port.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// Create stores a new task. Priority defaults to medium when omitted.
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	task := &entity.Task{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		TargetRole:    in.TargetRole,
		Priority:      priority,
		EstimatedTime: in.EstimatedTime,
		Dependencies:  in.Dependencies,
		Resources:     in.Resources,
		StageID:       in.StageID,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// GetByID fetches a task; nil when absent.
func (uc *TaskUseCase) GetByID(id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// List returns tasks, optionally filtered by target role and category.
func (uc *TaskUseCase) List(filter repository.TaskFilter) ([]dto.TaskResponse, error) {
	tasks, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *taskToResponse(t))
	}
	return out, nil
}

// Update applies a partial update; nil when the task does not exist.
func (uc *TaskUseCase) Update(id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Category != nil {
		task.Category = *in.Category
	}
	if in.TargetRole != nil {
		task.TargetRole = *in.TargetRole
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.EstimatedTime != nil {
		task.EstimatedTime = *in.EstimatedTime
	}
	if in.Dependencies != nil {
		task.Dependencies = in.Dependencies
	}
	if in.Resources != nil {
		task.Resources = in.Resources
	}
	if in.StageID != nil {
		task.StageID = in.StageID
	}
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// Delete removes a task. The bool reports whether anything existed.
func (uc *TaskUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		TargetRole:    t.TargetRole,
		Priority:      t.Priority,
		EstimatedTime: t.EstimatedTime,
		Dependencies:  t.Dependencies,
		Resources:     t.Resources,
		StageID:       t.StageID,
	}
}
