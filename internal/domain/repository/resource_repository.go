package repository

import "github.com/asxpathway/pathway-api/internal/domain/entity"

// ResourceFilter narrows resource listings. Zero values mean "no filter".
type ResourceFilter struct {
	Type     string
	Category string
}

// ResourceRepository defines the persistence port for Resource (DIP).
type ResourceRepository interface {
	Create(resource *entity.Resource) error
	GetByID(id string) (*entity.Resource, error)
	List(filter ResourceFilter) ([]*entity.Resource, error)
	Update(resource *entity.Resource) error
}
