package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/storage"
)

// ReferralRepositoryStub -
type ReferralRepositoryStub struct {
	InsertCalled         func(ctx context.Context, record *storage.ReferralCode) error
	UpdateCalled         func(ctx context.Context, record *storage.ReferralCode) error
	DeleteCalled         func(ctx context.Context, id string) error
	FindByIDCalled       func(ctx context.Context, id string) (*storage.ReferralCode, error)
	FindByCodeCalled     func(ctx context.Context, code string) (*storage.ReferralCode, error)
	IncrementUsageCalled func(ctx context.Context, code string) error
	ListCalled           func(ctx context.Context, page storage.Pagination) ([]*storage.ReferralCode, int64, error)
}

// Insert -
func (stub *ReferralRepositoryStub) Insert(ctx context.Context, record *storage.ReferralCode) error {
	if stub.InsertCalled != nil {
		return stub.InsertCalled(ctx, record)
	}

	return nil
}

// Update -
func (stub *ReferralRepositoryStub) Update(ctx context.Context, record *storage.ReferralCode) error {
	if stub.UpdateCalled != nil {
		return stub.UpdateCalled(ctx, record)
	}

	return nil
}

// Delete -
func (stub *ReferralRepositoryStub) Delete(ctx context.Context, id string) error {
	if stub.DeleteCalled != nil {
		return stub.DeleteCalled(ctx, id)
	}

	return nil
}

// FindByID -
func (stub *ReferralRepositoryStub) FindByID(ctx context.Context, id string) (*storage.ReferralCode, error) {
	if stub.FindByIDCalled != nil {
		return stub.FindByIDCalled(ctx, id)
	}

	return &storage.ReferralCode{ID: id}, nil
}

// FindByCode -
func (stub *ReferralRepositoryStub) FindByCode(ctx context.Context, code string) (*storage.ReferralCode, error) {
	if stub.FindByCodeCalled != nil {
		return stub.FindByCodeCalled(ctx, code)
	}

	return &storage.ReferralCode{Code: code}, nil
}

// IncrementUsage -
func (stub *ReferralRepositoryStub) IncrementUsage(ctx context.Context, code string) error {
	if stub.IncrementUsageCalled != nil {
		return stub.IncrementUsageCalled(ctx, code)
	}

	return nil
}

// List -
func (stub *ReferralRepositoryStub) List(ctx context.Context, page storage.Pagination) ([]*storage.ReferralCode, int64, error) {
	if stub.ListCalled != nil {
		return stub.ListCalled(ctx, page)
	}

	return nil, 0, nil
}

// IsInterfaceNil -
func (stub *ReferralRepositoryStub) IsInterfaceNil() bool {
	return stub == nil
}
