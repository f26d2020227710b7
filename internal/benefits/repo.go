package benefits

import (
	"context"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository stores member travel and club entitlements.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a benefits repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBenefit persists one travel entitlement record.
func (r *Repository) CreateBenefit(ctx context.Context, dto CreateBenefitDTO) (*models.Benefit, error) {
	benefit := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(benefit).Error; err != nil {
		return nil, err
	}
	return benefit, nil
}

// ListBenefits returns travel entitlements, newest first.
func (r *Repository) ListBenefits(ctx context.Context) ([]models.Benefit, error) {
	var list []models.Benefit
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListBenefitsByMember filters travel entitlements for one member.
func (r *Repository) ListBenefitsByMember(ctx context.Context, memberID uuid.UUID) ([]models.Benefit, error) {
	var list []models.Benefit
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateTravelStatus sets the travel workflow state and note.
func (r *Repository) UpdateTravelStatus(ctx context.Context, id uuid.UUID, status, note string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Benefit{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{"travel_status": status, "status_note": note})
	return res.RowsAffected, res.Error
}

// CreateClubBenefit persists one club facility grant.
func (r *Repository) CreateClubBenefit(ctx context.Context, dto CreateClubBenefitDTO) (*models.ClubBenefit, error) {
	benefit := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(benefit).Error; err != nil {
		return nil, err
	}
	return benefit, nil
}

// ListClubBenefits returns club grants, newest first.
func (r *Repository) ListClubBenefits(ctx context.Context) ([]models.ClubBenefit, error) {
	var list []models.ClubBenefit
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListClubBenefitsByMember filters club grants for one member.
func (r *Repository) ListClubBenefitsByMember(ctx context.Context, memberID uuid.UUID) ([]models.ClubBenefit, error) {
	var list []models.ClubBenefit
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateClubBenefitStatus sets the club workflow state and note.
func (r *Repository) UpdateClubBenefitStatus(ctx context.Context, id uuid.UUID, status, note string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.ClubBenefit{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{"benefit_status": status, "status_note": note})
	return res.RowsAffected, res.Error
}
