package memberships

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sanjaykhanna/clubcrm-backend/pkg/db"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
)

// Service manages sold membership packages.
type Service struct {
	db *db.Client
}

func NewService(client *db.Client) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	return &Service{db: client}, nil
}

func (s *Service) Create(ctx context.Context, in CreateMembershipDTO) (*MembershipDTO, error) {
	repo := NewRepository(s.db.DB())
	membership, err := repo.Create(ctx, in)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create membership")
	}
	return FromModel(membership), nil
}

func (s *Service) List(ctx context.Context) ([]MembershipDTO, error) {
	repo := NewRepository(s.db.DB())
	rows, err := repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list memberships")
	}
	return FromModels(rows), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*MembershipDTO, error) {
	repo := NewRepository(s.db.DB())
	membership, err := repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "membership not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load membership")
	}
	return FromModel(membership), nil
}
