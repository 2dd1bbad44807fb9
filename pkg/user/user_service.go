package user

import (
	"Bowl-Builder-Backend/domain"
	"Bowl-Builder-Backend/entities"
	"Bowl-Builder-Backend/internal/utils/mailing"
	"Bowl-Builder-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	if !usernamePattern.MatchString(req.Username) {
		return domain.AuthResponse{}, domain.ErrInvalidUsername
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.AuthResponse{}, domain.ErrEmptyName
	}

	if len(req.Password) < 6 {
		return domain.AuthResponse{}, domain.ErrPasswordTooShort
	}
	if !containsSpecial(req.Password) {
		return domain.AuthResponse{}, domain.ErrPasswordNoSpecial
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.AuthResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: HashPassword(req.Password),
		Name:         name,
		Email:        strings.TrimSpace(req.Email),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	if user.Email != "" && mailing.Configured() {
		go func() {
			body := fmt.Sprintf("<p>Hi %s, welcome to the bowl builder! Start stacking ingredients and save your favorite bowls.</p>", user.Name)
			_ = mailing.SendMail(user.Email, "Welcome to Bowl Builder", body)
		}()
	}

	return domain.AuthResponse{
		Token: s.jwtService.GenerateToken(user.ID.String()),
		User: domain.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Name:     user.Name,
		},
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if !CheckPassword(req.Password, user.PasswordHash) {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return domain.AuthResponse{
		Token: s.jwtService.GenerateToken(user.ID.String()),
		User: domain.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Name:     user.Name,
		},
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func containsSpecial(password string) bool {
	for _, r := range password {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}
