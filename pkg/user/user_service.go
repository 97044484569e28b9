package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/utils/mailing"
	"RecycleHub-Backend/internal/utils/storage"
	"RecycleHub-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, email string) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error

		GetUsers(ctx context.Context, role string, page, limit int) ([]*domain.UserResponse, int64, error)
		SetUserActive(ctx context.Context, id string, active bool) error
		UpdateUserRole(ctx context.Context, id string, role string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:                 user.ID.String(),
		Name:               user.Name,
		Email:              user.Email,
		Phone:              user.Phone,
		Address:            user.Address,
		Role:               user.Role,
		ProfileImageURL:    user.ProfileImageURL,
		Rating:             user.Rating,
		TotalCollections:   user.TotalCollections,
		TotalEarnings:      user.TotalEarnings,
		TotalRecycledItems: user.TotalRecycledItems,
		TotalRecycledValue: user.TotalRecycledValue,
		IsActive:           user.IsActive,
		IsVerified:         user.IsVerified,
		CreatedAt:          user.CreatedAt,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     role,
		Rating:   decimal.Zero,
		IsActive: true,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	// Registration succeeds even if the mail provider is down; the user
	// can re-request verification later.
	_ = s.SendVerificationEmail(ctx, user.Email)

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return &domain.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
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
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if req.ProfileImage != nil {
		var objectKey string
		var uploadErr error
		if user.ProfileImageURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(user.ProfileImageURL)
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.ProfileImage, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(
				fmt.Sprintf("profile-%s", user.ID.String()),
				req.ProfileImage,
				"profiles",
				storage.AllowImage...,
			)
		}
		if uploadErr != nil {
			return uploadErr
		}
		user.ProfileImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.userRepository.Update(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenResetPassword(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "verify_email",
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your email by clicking <a href=\"%s/verify?token=%s\">here</a>.</p>",
		user.Name, mailing.LoadMailConfig().AppURL, token,
	)
	return mailing.SendMail(user.Email, "Verify your email", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenResetPassword(token)
	if err != nil {
		return err
	}
	if claims["purpose"] != "verify_email" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.Update(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenResetPassword(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "reset_password",
	}, 1*time.Hour)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Reset your password by clicking <a href=\"%s/reset?token=%s\">here</a>. The link expires in one hour.</p>",
		user.Name, mailing.LoadMailConfig().AppURL, token,
	)
	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenResetPassword(req.Token)
	if err != nil {
		return err
	}
	if claims["purpose"] != "reset_password" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.userRepository.Update(ctx, user)
}

func (s *userService) GetUsers(ctx context.Context, role string, page, limit int) ([]*domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, role, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, toUserResponse(user))
	}
	return result, count, nil
}

func (s *userService) SetUserActive(ctx context.Context, id string, active bool) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsActive = active
	return s.userRepository.Update(ctx, user)
}

func (s *userService) UpdateUserRole(ctx context.Context, id string, role string) error {
	if role != domain.RoleUser && role != domain.RoleCollector && role != domain.RoleAdmin {
		return domain.ErrInvalidRole
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Role = role
	return s.userRepository.Update(ctx, user)
}
