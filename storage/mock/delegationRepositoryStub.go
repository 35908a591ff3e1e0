package mock

import (
	"context"

	"github.com/ethicalnode/staking-gateway-go/storage"
)

// DelegationRepositoryStub -
type DelegationRepositoryStub struct {
	InsertCalled          func(ctx context.Context, record *storage.Delegation) error
	FindByIDCalled        func(ctx context.Context, id string) (*storage.Delegation, error)
	FindByTxHashCalled    func(ctx context.Context, txHash string) (*storage.Delegation, error)
	ListByDelegatorCalled func(ctx context.Context, delegatorAddress string, page storage.Pagination) ([]*storage.Delegation, int64, error)
}

// Insert -
func (stub *DelegationRepositoryStub) Insert(ctx context.Context, record *storage.Delegation) error {
	if stub.InsertCalled != nil {
		return stub.InsertCalled(ctx, record)
	}

	return nil
}

// FindByID -
func (stub *DelegationRepositoryStub) FindByID(ctx context.Context, id string) (*storage.Delegation, error) {
	if stub.FindByIDCalled != nil {
		return stub.FindByIDCalled(ctx, id)
	}

	return &storage.Delegation{ID: id}, nil
}

// FindByTxHash -
func (stub *DelegationRepositoryStub) FindByTxHash(ctx context.Context, txHash string) (*storage.Delegation, error) {
	if stub.FindByTxHashCalled != nil {
		return stub.FindByTxHashCalled(ctx, txHash)
	}

	return &storage.Delegation{TxHash: txHash}, nil
}

// ListByDelegator -
func (stub *DelegationRepositoryStub) ListByDelegator(ctx context.Context, delegatorAddress string, page storage.Pagination) ([]*storage.Delegation, int64, error) {
	if stub.ListByDelegatorCalled != nil {
		return stub.ListByDelegatorCalled(ctx, delegatorAddress, page)
	}

	return nil, 0, nil
}

// IsInterfaceNil -
func (stub *DelegationRepositoryStub) IsInterfaceNil() bool {
	return stub == nil
}
