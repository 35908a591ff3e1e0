package storage

import (
	"context"

	"gorm.io/gorm"
)

type referralRepository struct {
	db *gorm.DB
}

// Insert adds a new record to the referral_codes table
func (r *referralRepository) Insert(ctx context.Context, record *ReferralCode) error {
	if record == nil {
		return ErrNilRecord
	}

	return r.db.WithContext(ctx).Create(record).Error
}

// Update saves the provided record
func (r *referralRepository) Update(ctx context.Context, record *ReferralCode) error {
	if record == nil {
		return ErrNilRecord
	}
	if len(record.ID) == 0 {
		return ErrEmptyID
	}

	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes the record with the provided id
func (r *referralRepository) Delete(ctx context.Context, id string) error {
	if len(id) == 0 {
		return ErrEmptyID
	}

	result := r.db.WithContext(ctx).Delete(&ReferralCode{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// FindByID retrieves a single record by its id
func (r *referralRepository) FindByID(ctx context.Context, id string) (*ReferralCode, error) {
	var record ReferralCode
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindByCode retrieves a single record by its code
func (r *referralRepository) FindByCode(ctx context.Context, code string) (*ReferralCode, error) {
	var record ReferralCode
	err := r.db.WithContext(ctx).First(&record, "code = ?", code).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// IncrementUsage bumps the usage counter of the provided code
func (r *referralRepository) IncrementUsage(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Model(&ReferralCode{}).
		Where("code = ?", code).
		Update("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// List returns a page of records and the total count
func (r *referralRepository) List(ctx context.Context, page Pagination) ([]*ReferralCode, int64, error) {
	query := r.db.WithContext(ctx).Model(&ReferralCode{})

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var records []*ReferralCode
	err = query.Order("created_at desc").Offset(page.Offset()).Limit(page.Limit()).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *referralRepository) IsInterfaceNil() bool {
	return r == nil
}
