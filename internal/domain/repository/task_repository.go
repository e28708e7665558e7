package repository

import "github.com/asxpathway/pathway-api/internal/domain/entity"

// TaskFilter narrows task listings. Zero values mean "no filter".
type TaskFilter struct {
	TargetRole string
	Category   string
}

// TaskRepository defines the persistence port for Task (DIP).
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	List(filter TaskFilter) ([]*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id string) (bool, error)
}
