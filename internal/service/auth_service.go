package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// TokenRevoker remembers revoked token ids until they would have expired.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Register(ctx context.Context, actor Actor, req dto.RegisterRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, actor Actor, id uint) error
	// EnsureOwner creates the default owner account when its email is unused.
	EnsureOwner(ctx context.Context, email, password, name string) (bool, error)
}

type authService struct {
	repo    repository.UserRepository
	cfg     *config.Config
	revoker TokenRevoker
}

// NewAuthService builds the auth service. revoker may be nil, in which case
// logout is a no-op.
func NewAuthService(repo repository.UserRepository, cfg *config.Config, revoker TokenRevoker) AuthService {
	return &authService{repo: repo, cfg: cfg, revoker: revoker}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, User: toUserResponse(user)}, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.revoker == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, jti, ttl)
}

func (s *authService) Register(ctx context.Context, actor Actor, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Invalid("User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         model.CanonicalRole(req.Role),
		InvitedBy:    uintPtr(actor.UserID),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *authService) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "User not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, *req.Email)
		if err == nil && existing.ID != user.ID {
			return nil, apierror.Invalid("Email already in use")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = model.CanonicalRole(*req.Role)
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) DeleteUser(ctx context.Context, actor Actor, id uint) error {
	if actor.UserID == id {
		return apierror.Invalid("Cannot delete your own account")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "User not found")
	}
	return s.repo.Delete(ctx, id)
}

func (s *authService) EnsureOwner(ctx context.Context, email, password, name string) (bool, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, err
	}
	owner := &model.User{Email: email, PasswordHash: string(hash), Name: name, Role: model.RoleOwner}
	if err := s.repo.Create(ctx, owner); err != nil {
		return false, err
	}
	return true, nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	hours := s.cfg.JWTExpirationHours
	if hours <= 0 {
		hours = 24
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(user.ID), 10),
		"name": user.Name,
		"role": model.CanonicalRole(user.Role),
		"jti":  uuid.NewString(),
		"exp":  now.Add(time.Duration(hours) * time.Hour).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      model.CanonicalRole(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
