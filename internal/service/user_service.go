package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/pkg/validator"
)

type UserService interface {
	GetAllUsers(ctx context.Context, p model.Principal) ([]model.UserResponse, error)
	GetUserByID(ctx context.Context, p model.Principal, id string) (*model.UserResponse, error)
	CreateUser(ctx context.Context, p model.Principal, req *CreateUserRequest) (*model.UserResponse, error)
	UpdateUser(ctx context.Context, p model.Principal, targetID string, patch model.UserPatch) (*model.UserResponse, error)
	DeactivateUser(ctx context.Context, p model.Principal, targetID string) error
}

type CreateUserRequest struct {
	Username    string     `json:"username" validate:"required,min=3"`
	Password    string     `json:"password" validate:"required,min=6"`
	FullName    string     `json:"full_name" validate:"required"`
	Email       string     `json:"email" validate:"omitempty,email"`
	PhoneNumber string     `json:"phone_number"`
	Role        model.Role `json:"role"`
	IsActive    *bool      `json:"is_active"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers(ctx context.Context, p model.Principal) ([]model.UserResponse, error) {
	if !p.CanListUsers() {
		return nil, model.ErrForbidden
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, nil
}

func (s *userService) GetUserByID(ctx context.Context, p model.Principal, id string) (*model.UserResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrNotFound
	}
	if !p.IsAdministrator() && p.UserID != id {
		return nil, model.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) CreateUser(ctx context.Context, p model.Principal, req *CreateUserRequest) (*model.UserResponse, error) {
	if !p.CanCreateUsers() {
		return nil, model.ErrForbidden
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, validator.FirstMessage(errs))
	}

	role := req.Role
	if role == "" {
		role = model.RoleWarehouseKeeper
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", model.ErrValidation, req.Role)
	}

	now := time.Now()
	user := &model.User{
		ID:          uuid.NewString(),
		Username:    req.Username,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		IsActive:    lo.FromPtrOr(req.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// UpdateUser applies a partial update under the policy: administrators may
// change anyone and anything; other callers only themselves, and never the
// privileged fields (role, is_active).
func (s *userService) UpdateUser(ctx context.Context, p model.Principal, targetID string, patch model.UserPatch) (*model.UserResponse, error) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return nil, model.ErrNotFound
	}
	if !p.IsAdministrator() {
		if p.UserID != targetID {
			return nil, model.ErrForbidden
		}
		if patch.TouchesPrivilegedFields() {
			return nil, model.ErrForbidden
		}
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: empty patch", model.ErrValidation)
	}
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, validator.FirstMessage(errs))
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", model.ErrValidation, *patch.Role)
	}

	user, err := s.userRepo.Update(ctx, targetID, patch)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// DeactivateUser soft-deletes by clearing the active flag; the document and
// its transaction references stay intact.
func (s *userService) DeactivateUser(ctx context.Context, p model.Principal, targetID string) error {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return model.ErrNotFound
	}
	if !p.CanDeactivateUsers() {
		return model.ErrForbidden
	}

	_, err := s.userRepo.Update(ctx, targetID, model.UserPatch{IsActive: lo.ToPtr(false)})
	return err
}
