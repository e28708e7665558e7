package repository

import (
	"time"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
)

// CompanyRepository defines the persistence port for Company (DIP).
// UpdateTimeline patches only the supplied fields (nil = leave untouched)
// and returns the post-update row, or nil if the id does not exist.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	Update(company *entity.Company) error
	UpdateTimeline(id string, stage *string, targetDate *time.Time) (*entity.Company, error)
}
