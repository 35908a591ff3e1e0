package denom

import "errors"

var (
	errEmptyAmount    = errors.New("empty amount")
	errInvalidAmount  = errors.New("invalid base unit amount")
	errNegativeAmount = errors.New("negative amount")
)
