package repository

import "github.com/asxpathway/pathway-api/internal/domain/entity"

// UserRepository defines the persistence port for User (DIP).
// The implementation lives in infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
}
