package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/storage"
)

// ScreeningRepositoryStub -
type ScreeningRepositoryStub struct {
	InsertCalled   func(ctx context.Context, record *storage.HalalScreening) error
	UpdateCalled   func(ctx context.Context, record *storage.HalalScreening) error
	DeleteCalled   func(ctx context.Context, id string) error
	FindByIDCalled func(ctx context.Context, id string) (*storage.HalalScreening, error)
	ListCalled     func(ctx context.Context, network string, page storage.Pagination) ([]*storage.HalalScreening, int64, error)
}

// Insert -
func (stub *ScreeningRepositoryStub) Insert(ctx context.Context, record *storage.HalalScreening) error {
	if stub.InsertCalled != nil {
		return stub.InsertCalled(ctx, record)
	}

	return nil
}

// Update -
func (stub *ScreeningRepositoryStub) Update(ctx context.Context, record *storage.HalalScreening) error {
	if stub.UpdateCalled != nil {
		return stub.UpdateCalled(ctx, record)
	}

	return nil
}

// Delete -
func (stub *ScreeningRepositoryStub) Delete(ctx context.Context, id string) error {
	if stub.DeleteCalled != nil {
		return stub.DeleteCalled(ctx, id)
	}

	return nil
}

// FindByID -
func (stub *ScreeningRepositoryStub) FindByID(ctx context.Context, id string) (*storage.HalalScreening, error) {
	if stub.FindByIDCalled != nil {
		return stub.FindByIDCalled(ctx, id)
	}

	return &storage.HalalScreening{ID: id}, nil
}

// List -
func (stub *ScreeningRepositoryStub) List(ctx context.Context, network string, page storage.Pagination) ([]*storage.HalalScreening, int64, error) {
	if stub.ListCalled != nil {
		return stub.ListCalled(ctx, network, page)
	}

	return nil, 0, nil
}

// IsInterfaceNil -
func (stub *ScreeningRepositoryStub) IsInterfaceNil() bool {
	return stub == nil
}
