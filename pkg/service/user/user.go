// Package user provides business logic for account management.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repouser "github.com/splitmoney/splitmoney/pkg/repository/user"
	"github.com/splitmoney/splitmoney/pkg/utils"
)

type Service struct {
	users  repouser.Repository
	logger *slog.Logger
}

func New(users repouser.Repository, logger *slog.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// Register creates a new account. The email must be unused; the password is
// stored as a bcrypt hash. New accounts start unverified and pick up the
// default role until an admin assigns one.
func (s *Service) Register(
	ctx context.Context,
	fullName, email, contactNo, password string,
) (*dto.UserRead, error) {
	log := s.logger.With("context", "Register", "email", email)
	log.Debug("Register called")

	if !utils.IsEmail(email) {
		log.Warn("Register failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}
	if exists {
		log.Warn("Register failed", "error", domain.ErrEmailExists)
		return nil, domain.ErrEmailExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}
	id := uuid.New()
	err = s.users.Create(ctx, &dto.UserCreate{
		ID:        id,
		FullName:  fullName,
		Email:     email,
		ContactNo: contactNo,
		Password:  hash,
	})
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}

	u, err := s.users.Get(ctx, id)
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}
	log.Info("Register successful", "userID", id)
	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	log := s.logger.With("context", "Get", "userID", id)
	log.Debug("Get called")
	u, err := s.users.Get(ctx, id)
	if err != nil {
		log.Error("Get failed", "error", err)
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *Service) List(
	ctx context.Context,
	search string,
	page, pageSize int,
) ([]*dto.UserRead, int64, error) {
	log := s.logger.With("context", "List")
	log.Debug("List called", "search", search, "page", page)
	return s.users.List(ctx, search, page, pageSize)
}

// Update changes profile fields. A new email must still be unused; a new
// password is re-hashed before storage.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.UserUpdate,
) (*dto.UserRead, error) {
	log := s.logger.With("context", "Update", "userID", id)
	log.Debug("Update called")

	existing, err := s.users.Get(ctx, id)
	if err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	if existing == nil {
		log.Warn("Update failed", "error", domain.ErrNotFound)
		return nil, domain.ErrNotFound
	}

	if update.Email != nil && *update.Email != existing.Email {
		if !utils.IsEmail(*update.Email) {
			log.Warn("Update failed", "error", domain.ErrValidation)
			return nil, domain.ErrValidation
		}
		exists, err := s.users.ExistsByEmail(ctx, *update.Email)
		if err != nil {
			log.Error("Update failed", "error", err)
			return nil, err
		}
		if exists {
			log.Warn("Update failed", "error", domain.ErrEmailExists)
			return nil, domain.ErrEmailExists
		}
	}
	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password)
		if err != nil {
			log.Error("Update failed", "error", err)
			return nil, err
		}
		update.Password = &hash
	}

	if err = s.users.Update(ctx, id, update); err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	u, err := s.users.Get(ctx, id)
	if err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	log.Info("Update successful", "userID", id)
	return u, nil
}

func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("context", "SoftDelete", "userID", id)
	log.Debug("SoftDelete called")

	existing, err := s.users.Get(ctx, id)
	if err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	if existing == nil {
		log.Warn("SoftDelete failed", "error", domain.ErrNotFound)
		return domain.ErrNotFound
	}
	if err = s.users.SoftDelete(ctx, id); err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	log.Info("SoftDelete successful", "userID", id)
	return nil
}
