package leads

import (
	"context"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes lead persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a leads repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilter narrows List output. Zero values mean no constraint.
type ListFilter struct {
	Status     enums.LeadStatus
	TLID       *uuid.UUID
	AssignedTo *uuid.UUID
}

// List returns leads matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Lead, error) {
	q := r.db.WithContext(ctx).Model(&models.Lead{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TLID != nil {
		q = q.Where("tl_id = ?", *filter.TLID)
	}
	if filter.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *filter.AssignedTo)
	}
	var list []models.Lead
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListByLocation matches location case-insensitively.
func (r *Repository) ListByLocation(ctx context.Context, location string) ([]models.Lead, error) {
	var list []models.Lead
	if err := r.db.WithContext(ctx).
		Where("LOWER(location) = LOWER(?)", location).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID loads one lead.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// Create inserts a single lead.
func (r *Repository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// BulkInsert writes the batch in one statement.
func (r *Repository) BulkInsert(ctx context.Context, batch []models.Lead) ([]models.Lead, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Create(&batch).Error; err != nil {
		return nil, err
	}
	return batch, nil
}

// UpdateStatus sets the status column and reports whether a row matched.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.LeadStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	return res.RowsAffected, res.Error
}

// UpdateRemark sets the remark column and reports whether a row matched.
func (r *Repository) UpdateRemark(ctx context.Context, id uuid.UUID, remark string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("id = ?", id).
		UpdateColumn("remark", remark)
	return res.RowsAffected, res.Error
}

// UpdateFields overwrites the capture columns from the provided map.
func (r *Repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes the lead row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Lead{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// AssignBatch points the given leads at one user.
func (r *Repository) AssignBatch(ctx context.Context, ids []uuid.UUID, userID uuid.UUID, saleExecutive, saleTL *string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	updates := map[string]any{"assigned_to": userID}
	if saleExecutive != nil {
		updates["sale_executive"] = *saleExecutive
	}
	if saleTL != nil {
		updates["sale_tl"] = *saleTL
	}
	res := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("id IN ?", ids).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// CountsByExecutive groups a team lead's leads per executive, biggest first.
func (r *Repository) CountsByExecutive(ctx context.Context, tlID uuid.UUID) ([]ExecutiveCount, error) {
	var counts []ExecutiveCount
	if err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("executive, COUNT(*) AS count").
		Where("tl_id = ?", tlID).
		Group("executive").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// StatusCounts tallies leads per status within the filter scope.
func (r *Repository) StatusCounts(ctx context.Context, filter ListFilter) (map[enums.LeadStatus]int64, error) {
	type row struct {
		Status enums.LeadStatus
		Count  int64
	}
	q := r.db.WithContext(ctx).Model(&models.Lead{})
	if filter.TLID != nil {
		q = q.Where("tl_id = ?", *filter.TLID)
	}
	if filter.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *filter.AssignedTo)
	}
	var rows []row
	if err := q.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[enums.LeadStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}
