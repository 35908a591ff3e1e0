package storage

import (
	"context"

	"gorm.io/gorm"
)

type validatorRepository struct {
	db *gorm.DB
}

// Insert adds a new record to the validators table
func (r *validatorRepository) Insert(ctx context.Context, record *Validator) error {
	if record == nil {
		return ErrNilRecord
	}

	return r.db.WithContext(ctx).Create(record).Error
}

// Update saves the provided record
func (r *validatorRepository) Update(ctx context.Context, record *Validator) error {
	if record == nil {
		return ErrNilRecord
	}
	if len(record.ID) == 0 {
		return ErrEmptyID
	}

	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes the record with the provided id
func (r *validatorRepository) Delete(ctx context.Context, id string) error {
	if len(id) == 0 {
		return ErrEmptyID
	}

	result := r.db.WithContext(ctx).Delete(&Validator{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// FindByID retrieves a single record by its id
func (r *validatorRepository) FindByID(ctx context.Context, id string) (*Validator, error) {
	var record Validator
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindByOperatorAddress retrieves a single record by its operator address
func (r *validatorRepository) FindByOperatorAddress(ctx context.Context, operatorAddress string) (*Validator, error) {
	var record Validator
	err := r.db.WithContext(ctx).First(&record, "operator_address = ?", operatorAddress).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// List returns a page of records and the total count
func (r *validatorRepository) List(ctx context.Context, onlyActive bool, page Pagination) ([]*Validator, int64, error) {
	query := r.db.WithContext(ctx).Model(&Validator{})
	if onlyActive {
		query = query.Where("active = ?", true)
	}

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var records []*Validator
	err = query.Order("moniker asc").Offset(page.Offset()).Limit(page.Limit()).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *validatorRepository) IsInterfaceNil() bool {
	return r == nil
}
