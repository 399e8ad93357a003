package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"itemstore/internal/auth"
	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/repository"
)

// AuthService handles signup, credential authentication and token exchange.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) error
	Signin(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
	IssueAccessToken(ctx context.Context, email, password string) (accessToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Signup registers a new user with a hashed password. New users start
// inactive with the default role.
func (s *authService) Signup(ctx context.Context, name, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Signin authenticates credentials and returns an access and a refresh token.
// Unknown emails and wrong passwords yield the same generic error.
func (s *authService) Signin(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return "", "", err
	}

	accessToken, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("create access token: %w", err)
	}
	refreshToken, err := s.tokens.CreateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("create refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

// IssueAccessToken authenticates credentials and returns only an access
// token, backing the OAuth2 password-form endpoint.
func (s *authService) IssueAccessToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	accessToken, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("create access token: %w", err)
	}
	return accessToken, nil
}

// Refresh exchanges a valid refresh token for a new access token. Access
// tokens are never accepted here. The refresh token is not rotated.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}
	if claims.TokenKind != auth.TokenKindRefresh {
		return "", apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err := s.tokens.CreateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("create access token: %w", err)
	}
	return accessToken, nil
}

func (s *authService) authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
