package storage

import (
	"context"

	"gorm.io/gorm"
)

type screeningRepository struct {
	db *gorm.DB
}

// Insert adds a new record to the halal_screenings table
func (r *screeningRepository) Insert(ctx context.Context, record *HalalScreening) error {
	if record == nil {
		return ErrNilRecord
	}

	return r.db.WithContext(ctx).Create(record).Error
}

// Update saves the provided record
func (r *screeningRepository) Update(ctx context.Context, record *HalalScreening) error {
	if record == nil {
		return ErrNilRecord
	}
	if len(record.ID) == 0 {
		return ErrEmptyID
	}

	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes the record with the provided id
func (r *screeningRepository) Delete(ctx context.Context, id string) error {
	if len(id) == 0 {
		return ErrEmptyID
	}

	result := r.db.WithContext(ctx).Delete(&HalalScreening{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// FindByID retrieves a single record by its id
func (r *screeningRepository) FindByID(ctx context.Context, id string) (*HalalScreening, error) {
	var record HalalScreening
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// List returns a page of records and the total count, optionally filtered by network
func (r *screeningRepository) List(ctx context.Context, network string, page Pagination) ([]*HalalScreening, int64, error) {
	query := r.db.WithContext(ctx).Model(&HalalScreening{})
	if len(network) > 0 {
		query = query.Where("network = ?", network)
	}

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var records []*HalalScreening
	err = query.Order("screened_at desc").Offset(page.Offset()).Limit(page.Limit()).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *screeningRepository) IsInterfaceNil() bool {
	return r == nil
}
