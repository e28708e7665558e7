package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implements the TaskRepository port over PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository builds the persistence adapter for tasks.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// Create persists a new task.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, category, target_role, priority, estimated_time, dependencies, resources, stage_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		task.ID, task.Title, task.Description, task.Category, task.TargetRole,
		task.Priority, task.EstimatedTime, task.Dependencies, task.Resources, task.StageID,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID fetches a task by id; nil when absent.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `
		SELECT id, title, description, category, target_role, priority, estimated_time, dependencies, resources, stage_id
		FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.TargetRole,
		&t.Priority, &t.EstimatedTime, &t.Dependencies, &t.Resources, &t.StageID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// List returns tasks, optionally filtered by target role and category.
func (r *TaskRepo) List(filter repository.TaskFilter) ([]*entity.Task, error) {
	query := `
		SELECT id, title, description, category, target_role, priority, estimated_time, dependencies, resources, stage_id
		FROM tasks
		WHERE ($1 = '' OR target_role = $1)
		  AND ($2 = '' OR category = $2)
		ORDER BY title`
	rows, err := r.pool.Query(context.Background(), query, filter.TargetRole, filter.Category)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &t.TargetRole,
			&t.Priority, &t.EstimatedTime, &t.Dependencies, &t.Resources, &t.StageID); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update rewrites an existing task row.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, category = $4, target_role = $5, priority = $6, estimated_time = $7, dependencies = $8, resources = $9, stage_id = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		task.ID, task.Title, task.Description, task.Category, task.TargetRole,
		task.Priority, task.EstimatedTime, task.Dependencies, task.Resources, task.StageID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task; reports whether a row was removed.
func (r *TaskRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
