package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a record that already exists.
var ErrDuplicate = errors.New("record already exists")

// ErrStorage indicates a persistence fault that is neither a missing record
// nor a uniqueness violation.
var ErrStorage = errors.New("storage error")

// ErrAuditLog indicates that the audit log append failed after the primary
// mutation had already committed. The mutation stands; the failure is
// surfaced so callers can report it.
var ErrAuditLog = errors.New("audit log append failed")
