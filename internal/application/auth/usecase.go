// Package auth implements credential checks and token issuing for the
// optional Bearer gate on mutating routes.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
	"github.com/asxpathway/pathway-api/pkg/config"
	"github.com/asxpathway/pathway-api/pkg/jwt"
)

// UseCase verifies credentials and issues tokens.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase builds the use case with the user port and token settings.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login checks the username/password pair against the stored bcrypt hash and
// returns a signed token plus the user. An unknown username and a wrong
// password both come back as domain.ErrUnauthorized; the caller cannot tell
// which one failed.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *usecase.ToUserResponse(user)}, nil
}
