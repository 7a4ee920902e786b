package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these
// onto HTTP statuses in one place; see controllers.respondError.
var (
	ErrValidation    = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrNotAuthor     = errors.New("requester is not the author")
	ErrDuplicate     = errors.New("already endorsed")
	ErrQuotaExceeded = errors.New("watch zone limit reached")
	ErrDeleteLocked  = errors.New("pin has too many endorsements to delete")
)
