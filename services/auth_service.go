package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type RegisterRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=6,max=100"`
	FullName     string  `json:"full_name" binding:"required,min=1,max=255"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=20"`
	ProfileImage *string `json:"profile_image"`
	Role         string  `json:"role" binding:"omitempty,oneof=buyer seller"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=20"`
	ProfileImage *string `json:"profile_image"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthService struct {
	userRepo     repository.UserRepository
	tokenService *TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokenService *TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokenService: tokenService}
}

// Register creates a new account. The role is fixed here; admin accounts are
// provisioned out of band, not through the public endpoint.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*models.User, *ServiceError) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, NewValidationError("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewInternalError("Failed to create account")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewInternalError("Failed to hash password")
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.RoleBuyer
	}

	user := &models.User{
		Email:        req.Email,
		Password:     string(hashed),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		ProfileImage: req.ProfileImage,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, NewInternalError("Failed to create account")
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, *ServiceError) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.tokenService.GenerateToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, NewInternalError("Failed to generate token")
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, *ServiceError) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, NewNotFoundError("User not found")
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, *ServiceError) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, NewNotFoundError("User not found")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, NewInternalError("Failed to update profile")
	}
	return user, nil
}
