package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// UserUseCase applies business rules for portal users.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case with the persistence port.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create signs a user up. The password is bcrypt-hashed before persisting;
// the plain value never reaches the store. Returns domain.ErrUsernameAlreadyExists
// when the username is taken.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleFounder
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Name:         in.Name,
		Role:         role,
		Company:      in.Company,
		Position:     in.Position,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID fetches a user by id; nil when absent.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByUsername fetches a user by username; nil when absent.
func (uc *UserUseCase) GetByUsername(username string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Resolve turns a path segment that is either an opaque id or a username
// into the user record. Generated ids are hyphenated UUIDs and usernames
// never contain hyphens, which is the same heuristic the original portal
// shipped with. Returns nil when no user matches.
func (uc *UserUseCase) Resolve(idOrUsername string) (*entity.User, error) {
	if strings.Contains(idOrUsername, "-") {
		return uc.repo.GetByID(idOrUsername)
	}
	return uc.repo.GetByUsername(idOrUsername)
}

// Update applies a partial update. A supplied password is re-hashed.
// Returns nil when the user does not exist.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Company != nil {
		user.Company = *in.Company
	}
	if in.Position != nil {
		user.Position = *in.Position
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse maps the entity to its response shape, dropping the hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Company:   u.Company,
		Position:  u.Position,
		CreatedAt: u.CreatedAt,
	}
}
