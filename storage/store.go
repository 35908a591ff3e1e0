package storage

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var log = logger.GetOrCreate("staking-gateway-go/storage")

// ArgsStore is the argument DTO for the NewStore function
type ArgsStore struct {
	DSN string
}

// Store groups the repositories over one database handle
type Store struct {
	db          *gorm.DB
	Validators  ValidatorRepository
	Referrals   ReferralRepository
	Screenings  ScreeningRepository
	Delegations DelegationRepository
}

// NewStore opens the postgres database, migrates the schema and wires the repositories
func NewStore(args ArgsStore) (*Store, error) {
	if len(args.DSN) == 0 {
		return nil, ErrEmptyDSN
	}

	db, err := gorm.Open(postgres.Open(args.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	return newStoreWithDB(db)
}

func newStoreWithDB(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}

	err := db.AutoMigrate(
		&Validator{},
		&ReferralCode{},
		&HalalScreening{},
		&Delegation{},
	)
	if err != nil {
		return nil, err
	}

	log.Debug("database schema migrated")

	return &Store{
		db:          db,
		Validators:  &validatorRepository{db: db},
		Referrals:   &referralRepository{db: db},
		Screenings:  &screeningRepository{db: db},
		Delegations: &delegationRepository{db: db},
	}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *Store) IsInterfaceNil() bool {
	return s == nil
}
