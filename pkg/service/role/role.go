// Package role provides business logic for roles and role assignments.
package role

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	reporole "github.com/splitmoney/splitmoney/pkg/repository/role"
	repouser "github.com/splitmoney/splitmoney/pkg/repository/user"
)

type Service struct {
	roles  reporole.Repository
	users  repouser.Repository
	logger *slog.Logger
}

func New(
	roles reporole.Repository,
	users repouser.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{roles: roles, users: users, logger: logger}
}

func (s *Service) Create(ctx context.Context, name string) (*dto.RoleRead, error) {
	log := s.logger.With("context", "Create", "name", name)
	log.Debug("Create called")

	if name == "" {
		return nil, domain.ErrValidation
	}
	existing, err := s.roles.GetByName(ctx, name)
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	if existing != nil {
		log.Warn("Create failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}

	id := uuid.New()
	if err = s.roles.Create(ctx, id, name); err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	log.Info("Create successful", "roleID", id)
	return s.roles.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.RoleRead, error) {
	r, err := s.roles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]*dto.RoleRead, error) {
	return s.roles.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, name string) (*dto.RoleRead, error) {
	log := s.logger.With("context", "Update", "roleID", id)
	log.Debug("Update called")

	if name == "" {
		return nil, domain.ErrValidation
	}
	existing, err := s.roles.Get(ctx, id)
	if err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	if existing == nil {
		log.Warn("Update failed", "error", domain.ErrNotFound)
		return nil, domain.ErrNotFound
	}
	if err = s.roles.Update(ctx, id, name); err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	log.Info("Update successful", "roleID", id)
	return s.roles.Get(ctx, id)
}

func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("context", "SoftDelete", "roleID", id)
	log.Debug("SoftDelete called")

	existing, err := s.roles.Get(ctx, id)
	if err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err = s.roles.SoftDelete(ctx, id); err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	log.Info("SoftDelete successful", "roleID", id)
	return nil
}

// Assign gives an account a role, replacing any active assignment so that at
// most one remains active.
func (s *Service) Assign(ctx context.Context, userID, roleID uuid.UUID) error {
	log := s.logger.With("context", "Assign", "userID", userID, "roleID", roleID)
	log.Debug("Assign called")

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("Assign failed", "error", err)
		return err
	}
	if u == nil {
		log.Warn("Assign failed", "error", domain.ErrNotFound)
		return domain.ErrNotFound
	}
	r, err := s.roles.Get(ctx, roleID)
	if err != nil {
		log.Error("Assign failed", "error", err)
		return err
	}
	if r == nil {
		log.Warn("Assign failed", "error", domain.ErrNotFound)
		return domain.ErrNotFound
	}

	if err = s.roles.Assign(ctx, userID, roleID); err != nil {
		log.Error("Assign failed", "error", err)
		return err
	}
	log.Info("Assign successful", "role", r.Name)
	return nil
}

// ActiveRole resolves the account's effective role name, falling back to the
// default when no assignment is active.
func (s *Service) ActiveRole(ctx context.Context, userID uuid.UUID) (string, error) {
	role, err := s.roles.ActiveRoleName(ctx, userID)
	if err != nil {
		return "", err
	}
	if role == "" {
		role = domain.DefaultRoleName
	}
	return role, nil
}
