package types

import "errors"

// Store lifecycle errors.
var (
	ErrAlreadyOpen   = errors.New("store is already open")
	ErrStoreClosed   = errors.New("store is closed")
	ErrTableNotFound = errors.New("table not found")
	ErrSchemaTooNew  = errors.New("database schema is newer than this build")
	ErrBadMigrations = errors.New("migrations must have positive, strictly ascending versions")
)

// Mapper errors.
var (
	ErrMissingUpdate      = errors.New("missing update fields or conditions")
	ErrUnknownColumn      = errors.New("unknown column")
	ErrHeterogeneousRows  = errors.New("rows do not share the same columns")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrUnsupportedRowType = errors.New("row type must be a struct with db tags")
)

// Domain validation errors.
var (
	ErrRequiredField        = errors.New("required field missing")
	ErrDuplicatePhoneNumber = errors.New("phone number already in use")
	ErrDuplicateEquipment   = errors.New("equipment name already in use")
	ErrDuplicateUser        = errors.New("user already exists")
	ErrDuplicateCategory    = errors.New("category name already in use")
	ErrInvalidDateRange     = errors.New("discharge date is before admission date")
)
