package storage

import "context"

// ValidatorRepository defines the database operations on the validators table
type ValidatorRepository interface {
	Insert(ctx context.Context, record *Validator) error
	Update(ctx context.Context, record *Validator) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Validator, error)
	FindByOperatorAddress(ctx context.Context, operatorAddress string) (*Validator, error)
	List(ctx context.Context, onlyActive bool, page Pagination) ([]*Validator, int64, error)
	IsInterfaceNil() bool
}

// ReferralRepository defines the database operations on the referral_codes table
type ReferralRepository interface {
	Insert(ctx context.Context, record *ReferralCode) error
	Update(ctx context.Context, record *ReferralCode) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*ReferralCode, error)
	FindByCode(ctx context.Context, code string) (*ReferralCode, error)
	IncrementUsage(ctx context.Context, code string) error
	List(ctx context.Context, page Pagination) ([]*ReferralCode, int64, error)
	IsInterfaceNil() bool
}

// ScreeningRepository defines the database operations on the halal_screenings table
type ScreeningRepository interface {
	Insert(ctx context.Context, record *HalalScreening) error
	Update(ctx context.Context, record *HalalScreening) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*HalalScreening, error)
	List(ctx context.Context, network string, page Pagination) ([]*HalalScreening, int64, error)
	IsInterfaceNil() bool
}

// DelegationRepository defines the database operations on the delegations table
type DelegationRepository interface {
	Insert(ctx context.Context, record *Delegation) error
	FindByID(ctx context.Context, id string) (*Delegation, error)
	FindByTxHash(ctx context.Context, txHash string) (*Delegation, error)
	ListByDelegator(ctx context.Context, delegatorAddress string, page Pagination) ([]*Delegation, int64, error)
	IsInterfaceNil() bool
}
