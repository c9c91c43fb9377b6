package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planview/internal/model"
)

// SnapshotRepository persists the last-loaded file set per account. It is the
// only durability in the system; the normalization pipeline never touches it.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load returns the account's snapshot, or nil when none was saved yet.
func (r *SnapshotRepository) Load(ctx context.Context, accountID uuid.UUID) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// Save stores the snapshot, replacing the account's previous one.
func (r *SnapshotRepository) Save(ctx context.Context, snapshot *model.Snapshot) error {
	existing, err := r.Load(ctx, snapshot.AccountID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(snapshot).Error
	}
	existing.Files = snapshot.Files
	existing.UpdatedAt = snapshot.UpdatedAt
	return r.db.WithContext(ctx).Save(existing).Error
}

// Clear removes the account's snapshot. Clearing an absent snapshot is fine.
func (r *SnapshotRepository) Clear(ctx context.Context, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Snapshot{}, "account_id = ?", accountID).Error
}
