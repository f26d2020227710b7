package benefits

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/pkg/db"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
)

// Service manages travel benefits and club facility grants.
type Service struct {
	db *db.Client
}

func NewService(client *db.Client) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	return &Service{db: client}, nil
}

func (s *Service) CreateBenefit(ctx context.Context, in CreateBenefitDTO) (*BenefitDTO, error) {
	repo := NewRepository(s.db.DB())
	benefit, err := repo.CreateBenefit(ctx, in)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create benefit")
	}
	return FromBenefitModel(benefit), nil
}

func (s *Service) ListBenefits(ctx context.Context, memberID *uuid.UUID) ([]BenefitDTO, error) {
	repo := NewRepository(s.db.DB())

	if memberID != nil {
		list, err := repo.ListBenefitsByMember(ctx, *memberID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list benefits")
		}
		return FromBenefitModels(list), nil
	}

	list, err := repo.ListBenefits(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list benefits")
	}
	return FromBenefitModels(list), nil
}

func (s *Service) UpdateTravelStatus(ctx context.Context, id uuid.UUID, status, note string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "status is required")
	}

	repo := NewRepository(s.db.DB())
	affected, err := repo.UpdateTravelStatus(ctx, id, status, note)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update travel status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "benefit not found")
	}
	return nil
}

func (s *Service) CreateClubBenefit(ctx context.Context, in CreateClubBenefitDTO) (*ClubBenefitDTO, error) {
	repo := NewRepository(s.db.DB())
	benefit, err := repo.CreateClubBenefit(ctx, in)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create club benefit")
	}
	return FromClubBenefitModel(benefit), nil
}

func (s *Service) ListClubBenefits(ctx context.Context, memberID *uuid.UUID) ([]ClubBenefitDTO, error) {
	repo := NewRepository(s.db.DB())

	if memberID != nil {
		list, err := repo.ListClubBenefitsByMember(ctx, *memberID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list club benefits")
		}
		return FromClubBenefitModels(list), nil
	}

	list, err := repo.ListClubBenefits(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list club benefits")
	}
	return FromClubBenefitModels(list), nil
}

func (s *Service) UpdateClubBenefitStatus(ctx context.Context, id uuid.UUID, status, note string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "status is required")
	}

	repo := NewRepository(s.db.DB())
	affected, err := repo.UpdateClubBenefitStatus(ctx, id, status, note)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update club benefit status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "club benefit not found")
	}
	return nil
}
