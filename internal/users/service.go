package users

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sanjaykhanna/clubcrm-backend/pkg/db"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
)

// Service exposes the read-side directory operations over user accounts.
type Service struct {
	db *db.Client
}

func NewService(client *db.Client) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	return &Service{db: client}, nil
}

func (s *Service) List(ctx context.Context) ([]UserDTO, error) {
	repo := NewRepository(s.db.DB())
	rows, err := repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	return FromModels(rows), nil
}

func (s *Service) ListByRole(ctx context.Context, raw string) ([]UserDTO, error) {
	role, err := enums.ParseRole(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	repo := NewRepository(s.db.DB())
	rows, err := repo.ListByRole(ctx, role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users by role")
	}
	return FromModels(rows), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	repo := NewRepository(s.db.DB())
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return FromModel(user), nil
}

// ListByTL returns the accounts reporting to the given team lead.
func (s *Service) ListByTL(ctx context.Context, tlID uuid.UUID) ([]UserDTO, error) {
	repo := NewRepository(s.db.DB())
	rows, err := repo.ListByManager(ctx, tlID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users by tl")
	}
	return FromModels(rows), nil
}
