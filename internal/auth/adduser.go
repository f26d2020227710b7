package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/internal/users"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/config"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/security"
	"gorm.io/gorm"
)

const tempPasswordLength = 12

// AddUserService handles staff onboarding.
type AddUserService interface {
	AddUser(ctx context.Context, req AddUserRequest) (*AddUserResponse, error)
}

// AddUserServiceParams packages the dependencies for the onboarding flow.
type AddUserServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type addUserService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewAddUserService builds an onboarding service with the provided dependencies.
func NewAddUserService(params AddUserServiceParams) (AddUserService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &addUserService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *addUserService) AddUser(ctx context.Context, req AddUserRequest) (*AddUserResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	role, err := enums.ParseRole(strings.TrimSpace(req.Role))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	// Reception staff onboard agents without choosing a password; the
	// generated one is returned once and must be rotated on first login.
	password := req.Password
	tempPassword := ""
	if password == "" {
		tempPassword, err = security.GenerateTempPassword(tempPasswordLength)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate password")
		}
		password = tempPassword
	}

	passwordHash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *users.UserDTO
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		if err := checkIdentityFree(ctx, userRepo, username, email); err != nil {
			return err
		}

		managerID, err := s.resolveManager(ctx, userRepo, req.ManagerRef)
		if err != nil {
			return err
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Name:         strings.TrimSpace(req.Name),
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
			ManagerID:    managerID,
		})
		if err != nil {
			// Unique indexes on username/email close the race between
			// concurrent onboarding requests.
			if db.IsUniqueViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "username or email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddUserResponse{User: created, TempPassword: tempPassword}, nil
}

// checkIdentityFree gives a precise conflict message ahead of the unique
// indexes, which stay the authority under concurrent onboarding.
func checkIdentityFree(ctx context.Context, repo *users.Repository, username, email string) error {
	if _, err := repo.FindByUsername(ctx, username); err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "username already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check username")
	}
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
	}
	return nil
}

// resolveManager accepts either a user id or a username reference.
func (s *addUserService) resolveManager(ctx context.Context, repo *users.Repository, ref string) (*uuid.UUID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}

	if id, err := uuid.Parse(ref); err == nil {
		manager, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "manager not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup manager")
		}
		return &manager.ID, nil
	}

	manager, err := repo.FindByUsername(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "manager not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup manager")
	}
	return &manager.ID, nil
}
