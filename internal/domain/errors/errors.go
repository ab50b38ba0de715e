package errors

import (
	"fmt"
	"net/http"

	"marketplace/internal/errors"
)

// Kind classifies an application error. The HTTP layer maps kinds to status codes.
type Kind int

const (
	// KindServerError is an unexpected store or infrastructure failure.
	KindServerError Kind = iota
	// KindBadRequest is a malformed or invalid field.
	KindBadRequest
	// KindNotFound is a referenced entity that does not exist.
	KindNotFound
	// KindConflict is a business-rule violation.
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	default:
		return "ServerError"
	}
}

// HTTPStatus maps the kind to a response status. Client-side kinds all answer 400.
func (k Kind) HTTPStatus() int {
	if k == KindServerError {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors of the same code so that copies made by WithMessagef still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPStatus()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessagef returns a copy with a message naming the offending identifier.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrInvalidInput = NewBaseError(
		KindBadRequest,
		"INVALID_INPUT",
		"invalid input",
		"",
	)

	ErrInvalidURL = NewBaseError(
		KindBadRequest,
		"INVALID_URL",
		"invalid url",
		"",
	)

	ErrBatchLengthMismatch = NewBaseError(
		KindBadRequest,
		"BATCH_LENGTH_MISMATCH",
		"the length of the given values are different",
		"",
	)

	ErrEmptyAddress = NewBaseError(
		KindBadRequest,
		"EMPTY_ADDRESS",
		"user address is empty",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserProfileTaken = NewBaseError(
		KindConflict,
		"USER_PROFILE_TAKEN",
		"email or user name already in use",
		"",
	)

	ErrAlreadyLiked = NewBaseError(
		KindConflict,
		"NFT_ALREADY_LIKED",
		"user has already liked the NFT",
		"",
	)

	ErrNotLiked = NewBaseError(
		KindConflict,
		"NFT_NOT_LIKED",
		"tokenId not part of user's liked NFTs",
		"",
	)

	ErrNoLikes = NewBaseError(
		KindConflict,
		"NFT_NO_LIKES",
		"NFT has 0 or less likes",
		"",
	)

	// NFT errors
	ErrNFTNotFound = NewBaseError(
		KindNotFound,
		"NFT_NOT_FOUND",
		"NFT not found",
		"",
	)

	ErrNFTAlreadyExists = NewBaseError(
		KindConflict,
		"NFT_ALREADY_EXISTS",
		"NFT already exists",
		"",
	)

	ErrMetadataFrozen = NewBaseError(
		KindConflict,
		"NFT_METADATA_FROZEN",
		"NFT has its metadata frozen",
		"",
	)

	// Collection errors
	ErrCollectionNotFound = NewBaseError(
		KindNotFound,
		"COLLECTION_NOT_FOUND",
		"collection not found",
		"",
	)

	ErrCollectionNameTaken = NewBaseError(
		KindConflict,
		"COLLECTION_NAME_TAKEN",
		"collection name already exists",
		"",
	)

	ErrCollectionNotEmpty = NewBaseError(
		KindConflict,
		"COLLECTION_NOT_EMPTY",
		"collection contains one or more NFTs",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindServerError
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf extracts the kind of err. Errors that are not AppErrors are server errors.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindServerError
}
