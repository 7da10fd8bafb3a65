package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/entity"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/pkg/serverutils"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	userRepo contract.UserRepository
}

func NewAuthService(userRepo contract.UserRepository) IAuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	existing, err := s.userRepo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.UserRoleClient
	}

	user := &entity.User{
		Id:           uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.tokenResponse(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Auth("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Auth("Invalid credentials")
	}

	return s.tokenResponse(user)
}

func (s *authService) tokenResponse(user *entity.User) (*dto.TokenResponse, error) {
	accessToken, err := serverutils.IssueToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User: dto.UserResponse{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
