package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/MohsinEzaidi/GreenCoins/internal/utils/mailing"
	"github.com/MohsinEzaidi/GreenCoins/internal/utils/storage"
	"github.com/MohsinEzaidi/GreenCoins/pkg/jwt"
	"github.com/MohsinEzaidi/GreenCoins/pkg/notification"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (*domain.UserResponse, error)
		UpdatePreferences(ctx context.Context, req domain.UpdatePreferencesRequest, userID string) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository      UserRepository
		jwtService          jwt.JWTService
		notificationService notification.NotificationService
		s3                  storage.AwsS3
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	notificationService notification.NotificationService,
	s3 storage.AwsS3,
) UserService {
	return &userService{
		userRepository:      userRepository,
		jwtService:          jwtService,
		notificationService: notificationService,
		s3:                  s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if len(req.Password) < 6 {
		return nil, domain.ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	user := &entities.User{
		ID:                   uuid.New(),
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		CoinBalance:          0,
		NotificationsEnabled: true,
		LocationSharing:      true,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	// The unique index on email makes the check above race-safe: a
	// concurrent insert of the same address fails here.
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	if err := s.notificationService.Notify(ctx, user.ID.String(), "Welcome!", "Thanks for joining GreenCoins."); err != nil {
		log.Printf("failed to create welcome notification: %v", err)
	}
	go func() {
		if err := mailing.SendWelcomeMail(user.Email, user.Name); err != nil {
			log.Printf("failed to send welcome mail: %v", err)
		}
	}()

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return &domain.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return &domain.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Avatar != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("avatar-%s", user.ID.String()),
			req.Avatar,
			"avatars",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		user.AvatarURL = s.s3.GetPublicLink(objectKey)
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdatePreferences(ctx context.Context, req domain.UpdatePreferencesRequest, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if req.DarkTheme != nil {
		user.DarkTheme = *req.DarkTheme
	}
	if req.NotificationsEnabled != nil {
		user.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.LocationSharing != nil {
		user.LocationSharing = *req.LocationSharing
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		CoinBalance: user.CoinBalance,
		AvatarURL:   user.AvatarURL,
		Preferences: domain.PreferencesResponse{
			DarkTheme:            user.DarkTheme,
			NotificationsEnabled: user.NotificationsEnabled,
			LocationSharing:      user.LocationSharing,
		},
		CreatedAt: user.CreatedAt,
	}
}
