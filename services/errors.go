// Package services implements the dual ledger, bulk transfer, settings and
// reporting operations on top of the repositories.
package services

import "errors"

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("storage failure")
	ErrParse       = errors.New("invalid snapshot")
)

// Error kinds carried in the response envelope.
const (
	KindValidation  = "validation"
	KindNotFound    = "not_found"
	KindPersistence = "persistence"
	KindParse       = "parse"
	KindInternal    = "internal"
)

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	case errors.Is(err, ErrParse):
		return KindParse
	}
	return KindInternal
}
