package storage

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound signals that the requested record does not exist
var ErrNotFound = gorm.ErrRecordNotFound

var (
	// ErrNilDatabase signals that a nil database handle was provided
	ErrNilDatabase = errors.New("nil database handle")

	// ErrEmptyDSN signals that an empty data source name was provided
	ErrEmptyDSN = errors.New("empty data source name")

	// ErrNilRecord signals that a nil record was provided
	ErrNilRecord = errors.New("nil record")

	// ErrEmptyID signals that an empty record id was provided
	ErrEmptyID = errors.New("empty record id")
)
