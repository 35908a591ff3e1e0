package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/storage"
)

// ValidatorRepositoryStub -
type ValidatorRepositoryStub struct {
	InsertCalled                func(ctx context.Context, record *storage.Validator) error
	UpdateCalled                func(ctx context.Context, record *storage.Validator) error
	DeleteCalled                func(ctx context.Context, id string) error
	FindByIDCalled              func(ctx context.Context, id string) (*storage.Validator, error)
	FindByOperatorAddressCalled func(ctx context.Context, operatorAddress string) (*storage.Validator, error)
	ListCalled                  func(ctx context.Context, onlyActive bool, page storage.Pagination) ([]*storage.Validator, int64, error)
}

// Insert -
func (stub *ValidatorRepositoryStub) Insert(ctx context.Context, record *storage.Validator) error {
	if stub.InsertCalled != nil {
		return stub.InsertCalled(ctx, record)
	}

	return nil
}

// Update -
func (stub *ValidatorRepositoryStub) Update(ctx context.Context, record *storage.Validator) error {
	if stub.UpdateCalled != nil {
		return stub.UpdateCalled(ctx, record)
	}

	return nil
}

// Delete -
func (stub *ValidatorRepositoryStub) Delete(ctx context.Context, id string) error {
	if stub.DeleteCalled != nil {
		return stub.DeleteCalled(ctx, id)
	}

	return nil
}

// FindByID -
func (stub *ValidatorRepositoryStub) FindByID(ctx context.Context, id string) (*storage.Validator, error) {
	if stub.FindByIDCalled != nil {
		return stub.FindByIDCalled(ctx, id)
	}

	return &storage.Validator{ID: id}, nil
}

// FindByOperatorAddress -
func (stub *ValidatorRepositoryStub) FindByOperatorAddress(ctx context.Context, operatorAddress string) (*storage.Validator, error) {
	if stub.FindByOperatorAddressCalled != nil {
		return stub.FindByOperatorAddressCalled(ctx, operatorAddress)
	}

	return &storage.Validator{OperatorAddress: operatorAddress}, nil
}

// List -
func (stub *ValidatorRepositoryStub) List(ctx context.Context, onlyActive bool, page storage.Pagination) ([]*storage.Validator, int64, error) {
	if stub.ListCalled != nil {
		return stub.ListCalled(ctx, onlyActive, page)
	}

	return nil, 0, nil
}

// IsInterfaceNil -
func (stub *ValidatorRepositoryStub) IsInterfaceNil() bool {
	return stub == nil
}
