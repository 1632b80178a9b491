package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/contable-dev/contabilidad_api/internal/utils"
)

// userService provides user registration and authentication.
type userService struct {
	userRepo            portsrepo.UserRepositoryFacade
	auxiliarySystemRepo portsrepo.AuxiliarySystemRepositoryFacade
	counterRepo         portsrepo.CounterRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, auxiliarySystemRepo portsrepo.AuxiliarySystemRepositoryFacade, counterRepo portsrepo.CounterRepository) portssvc.UserSvcFacade {
	return &userService{
		userRepo:            userRepo,
		auxiliarySystemRepo: auxiliarySystemRepo,
		counterRepo:         counterRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if _, err := s.userRepo.FindUserByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: name already in use", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user name: %w", err)
	}

	var auxiliarySystemID string
	if req.AuxiliarySystemID != 0 {
		system, err := s.auxiliarySystemRepo.FindAuxiliarySystemBySequenceID(ctx, req.AuxiliarySystemID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: auxiliary system %d does not exist", apperrors.ErrValidation, req.AuxiliarySystemID)
			}
			return nil, err
		}
		auxiliarySystemID = system.AuxiliarySystemID
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	sequenceID, err := s.counterRepo.NextID(ctx, domain.EntityUser)
	if err != nil {
		return nil, fmt.Errorf("failed to mint user sequence id: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:            uuid.NewString(),
		SequenceID:        sequenceID,
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      passwordHash,
		AuxiliarySystemID: auxiliarySystemID,
		Active:            true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("user registered", "sequence_id", sequenceID)
	return &user, nil
}

// AuthenticateUser verifies the credentials and records the access time.
// The same error is returned for unknown emails and wrong passwords.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.Active {
		return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastAccess(ctx, user.UserID, now); err != nil {
		return nil, fmt.Errorf("failed to record last access: %w", err)
	}
	user.LastAccess = &now

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// FindOrCreateGoogleUser resolves the local user for a verified Google
// identity, creating a global user on first login. Google users get a
// random local password; they always authenticate through Google.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		if !user.Active {
			return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrUnauthorized)
		}
		now := time.Now()
		if err := s.userRepo.UpdateLastAccess(ctx, user.UserID, now); err != nil {
			return nil, fmt.Errorf("failed to record last access: %w", err)
		}
		user.LastAccess = &now
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	randomPassword, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password for google user: %w", err)
	}
	passwordHash, err := utils.HashPassword(randomPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for google user: %w", err)
	}

	sequenceID, err := s.counterRepo.NextID(ctx, domain.EntityUser)
	if err != nil {
		return nil, fmt.Errorf("failed to mint user sequence id: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		SequenceID:   sequenceID,
		Name:         info.Name,
		Email:        info.Email,
		PasswordHash: passwordHash,
		Active:       true,
		LastAccess:   &now,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("google user created", "sequence_id", sequenceID)
	return &newUser, nil
}
