package storage

import (
	"context"

	"gorm.io/gorm"
)

type delegationRepository struct {
	db *gorm.DB
}

// Insert adds a new record to the delegations table
func (r *delegationRepository) Insert(ctx context.Context, record *Delegation) error {
	if record == nil {
		return ErrNilRecord
	}

	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID retrieves a single record by its id
func (r *delegationRepository) FindByID(ctx context.Context, id string) (*Delegation, error) {
	var record Delegation
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindByTxHash retrieves a single record by its transaction hash
func (r *delegationRepository) FindByTxHash(ctx context.Context, txHash string) (*Delegation, error) {
	var record Delegation
	err := r.db.WithContext(ctx).First(&record, "tx_hash = ?", txHash).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// ListByDelegator returns a page of records of the provided delegator and the total count
func (r *delegationRepository) ListByDelegator(ctx context.Context, delegatorAddress string, page Pagination) ([]*Delegation, int64, error) {
	query := r.db.WithContext(ctx).Model(&Delegation{}).Where("delegator_address = ?", delegatorAddress)

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var records []*Delegation
	err = query.Order("created_at desc").Offset(page.Offset()).Limit(page.Limit()).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *delegationRepository) IsInterfaceNil() bool {
	return r == nil
}
