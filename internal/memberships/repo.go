package memberships

import (
	"context"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository stores sold membership packages.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a memberships repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists one membership record.
func (r *Repository) Create(ctx context.Context, dto CreateMembershipDTO) (*models.Membership, error) {
	membership := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return nil, err
	}
	return membership, nil
}

// List returns memberships, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Membership, error) {
	var list []models.Membership
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID loads one membership.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	if err := r.db.WithContext(ctx).First(&membership, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}
