package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Auth errors
	CodeInvalidCredentials  Code = "INVALID_CREDENTIALS"
	CodeUnauthenticated     Code = "UNAUTHENTICATED"
	CodeAccessDenied        Code = "ACCESS_DENIED"
	CodeDuplicateUsername   Code = "DUPLICATE_USERNAME"
	CodeWeakAdminCredential Code = "WEAK_ADMIN_CREDENTIAL"

	// Validation errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
	CodeInternal Code = "INTERNAL"
)

// HTTPStatus maps domain codes to HTTP status codes.
//
// AccessDenied intentionally shares 401 with Unauthenticated on the wire;
// the codes stay distinct internally so callers and logs can tell an
// anonymous request from a forbidden one.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidCredentials, CodeUnauthenticated, CodeAccessDenied:
		return http.StatusUnauthorized
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicateUsername:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
