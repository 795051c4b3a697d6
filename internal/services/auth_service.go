package services

import (
	"context"
	"log"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/response_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

// Login is a stateless credential check; it issues no token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	resp := &response_models.LoginResponse{
		User: response_models.LoginUser{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			Role:         user.Role,
			IsFirstLogin: user.IsFirstLogin,
		},
	}

	if user.IsFirstLogin {
		if err := s.userRepo.ClearFirstLogin(ctx, user.ID); err != nil {
			// The flag flip is best effort; the login itself succeeded.
			log.Printf("Failed to clear first-login flag for user %d: %v", user.ID, err)
		}
		resp.Message = "First login successful. Please change your password."
	}

	return resp, nil
}
