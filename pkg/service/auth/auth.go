// Package auth implements login, OTP verification and token issuance.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	"github.com/splitmoney/splitmoney/pkg/mailer"
	reporole "github.com/splitmoney/splitmoney/pkg/repository/role"
	repouser "github.com/splitmoney/splitmoney/pkg/repository/user"
	"github.com/splitmoney/splitmoney/pkg/utils"
)

// dummyHash keeps password comparison time constant when the account does
// not exist.
const dummyHash = "$2a$14$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

type Service struct {
	users  repouser.Repository
	roles  reporole.Repository
	sender mailer.Sender
	tokens *TokenIssuer
	cfg    *config.Jwt
	logger *slog.Logger
}

func New(
	users repouser.Repository,
	roles reporole.Repository,
	sender mailer.Sender,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:  users,
		roles:  roles,
		sender: sender,
		tokens: NewTokenIssuer(cfg),
		cfg:    cfg,
		logger: logger,
	}
}

// Tokens exposes the issuer for middleware wiring.
func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

// Login authenticates an account by email and password. Admins and accounts
// with a verified email get a token directly; everyone else gets an OTP
// challenge and must call VerifyOtp to finish. When adminOnly is set,
// non-admin accounts are rejected before any token or challenge is produced.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
	adminOnly bool,
) (*dto.LoginResult, error) {
	log := s.logger.With("context", "Login", "email", email)
	log.Debug("Login called")

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	if u == nil || u.Status != domain.AccountActive {
		// Always run a hash comparison to avoid timing attacks; a
		// deactivated account fails the same way as an unknown one.
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Warn("Login failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("Login failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}

	role, err := s.resolveRole(ctx, u.ID)
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	if adminOnly && !domain.IsAdminRole(role) {
		log.Warn("Login failed", "error", domain.ErrAdminRequired, "role", role)
		return nil, domain.ErrAdminRequired
	}

	if domain.IsAdminRole(role) || u.EmailVerified {
		token, err := s.issueToken(ctx, u, role)
		if err != nil {
			log.Error("Login failed", "error", err)
			return nil, err
		}
		log.Info("Login successful", "userID", u.ID, "role", role)
		return &dto.LoginResult{Token: token}, nil
	}

	challenge, err := s.challenge(ctx, u)
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login challenged", "userID", u.ID)
	return &dto.LoginResult{Challenge: challenge}, nil
}

// GenerateOtp re-verifies the credentials and issues a fresh code for an
// unverified account outside the login flow. Unknown accounts and wrong
// passwords fail identically so the endpoint cannot be used to enumerate
// emails. Admins never use OTP and verified emails have nothing left to
// verify.
func (s *Service) GenerateOtp(ctx context.Context, email, password string) (*dto.OtpChallenge, error) {
	log := s.logger.With("context", "GenerateOtp", "email", email)
	log.Debug("GenerateOtp called")

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Error("GenerateOtp failed", "error", err)
		return nil, err
	}
	if u == nil || u.Status != domain.AccountActive {
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Warn("GenerateOtp failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("GenerateOtp failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}

	role, err := s.resolveRole(ctx, u.ID)
	if err != nil {
		log.Error("GenerateOtp failed", "error", err)
		return nil, err
	}
	if domain.IsAdminRole(role) {
		log.Warn("GenerateOtp failed", "error", domain.ErrForbidden)
		return nil, domain.ErrForbidden
	}
	if u.EmailVerified {
		log.Warn("GenerateOtp failed", "error", domain.ErrEmailAlreadyVerified)
		return nil, domain.ErrEmailAlreadyVerified
	}

	challenge, err := s.challenge(ctx, u)
	if err != nil {
		log.Error("GenerateOtp failed", "error", err)
		return nil, err
	}
	log.Info("GenerateOtp successful", "userID", u.ID)
	return challenge, nil
}

// VerifyOtp consumes a code. A wrong or stale code leaves the stored OTP
// untouched; a correct one is single-use, marks the email verified and
// returns a token.
func (s *Service) VerifyOtp(
	ctx context.Context,
	userID uuid.UUID,
	code string,
) (*dto.TokenResponse, error) {
	log := s.logger.With("context", "VerifyOtp", "userID", userID)
	log.Debug("VerifyOtp called")

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("VerifyOtp failed", "error", err)
		return nil, err
	}
	if u == nil {
		log.Warn("VerifyOtp failed", "error", domain.ErrNotFound)
		return nil, domain.ErrNotFound
	}
	if u.Status != domain.AccountActive {
		log.Warn("VerifyOtp failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}

	if u.OtpCode == "" || u.OtpCreatedAt == nil || u.OtpCode != code ||
		time.Since(*u.OtpCreatedAt) > s.cfg.OtpTTL {
		log.Warn("VerifyOtp failed", "error", domain.ErrInvalidOrExpiredOtp)
		return nil, domain.ErrInvalidOrExpiredOtp
	}

	if err = s.users.ClearOtp(ctx, userID); err != nil {
		log.Error("VerifyOtp failed", "error", err)
		return nil, err
	}
	if err = s.users.MarkEmailVerified(ctx, userID); err != nil {
		log.Error("VerifyOtp failed", "error", err)
		return nil, err
	}

	role, err := s.resolveRole(ctx, userID)
	if err != nil {
		log.Error("VerifyOtp failed", "error", err)
		return nil, err
	}
	token, err := s.issueToken(ctx, u, role)
	if err != nil {
		log.Error("VerifyOtp failed", "error", err)
		return nil, err
	}
	log.Info("VerifyOtp successful", "userID", userID, "role", role)
	return token, nil
}

func (s *Service) resolveRole(ctx context.Context, userID uuid.UUID) (string, error) {
	role, err := s.roles.ActiveRoleName(ctx, userID)
	if err != nil {
		return "", err
	}
	if role == "" {
		role = domain.DefaultRoleName
	}
	return role, nil
}

func (s *Service) issueToken(
	ctx context.Context,
	u *dto.UserRead,
	role string,
) (*dto.TokenResponse, error) {
	token, err := s.tokens.Issue(u, role)
	if err != nil {
		return nil, err
	}
	if err = s.users.SetLastLogin(ctx, u.ID, time.Now()); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *Service) challenge(ctx context.Context, u *dto.UserRead) (*dto.OtpChallenge, error) {
	code, err := utils.GenerateOtpCode()
	if err != nil {
		return nil, err
	}
	if err = s.users.SetOtp(ctx, u.ID, code, time.Now()); err != nil {
		return nil, err
	}
	delivery := s.sender.SendOtp(ctx, u.Email, code)
	return &dto.OtpChallenge{
		UserID:       u.ID,
		Email:        u.Email,
		OtpGenerated: true,
		EmailStatus:  delivery.Status,
		EmailMessage: delivery.Message,
	}, nil
}
