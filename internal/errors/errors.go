package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required input is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidType is returned when a text conversion kind is unknown.
	ErrInvalidType = errors.New("invalid type provided for text conversion")
	// ErrInvalidToken is returned when a session token cannot be parsed or its signature is wrong.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a session token is past its expiry.
	ErrExpiredToken = errors.New("expired token, please renew it")
	// ErrNoSuchUser is returned when the referenced user does not exist.
	ErrNoSuchUser = errors.New("user does not exist")
	// ErrBadCredentials is returned when a password does not match.
	ErrBadCredentials = errors.New("credentials do not match")
	// ErrCredentialsExist is returned when username or email is already taken.
	ErrCredentialsExist = errors.New("credentials may already exist")
	// ErrNotFound is returned when a record or external resource is absent.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by external services refusing a duplicate create.
	ErrAlreadyExists = errors.New("already exists")
	// ErrStorage wraps persistence failures.
	ErrStorage = errors.New("storage error")
	// ErrExternalService wraps failures of Twilio or the completion API.
	ErrExternalService = errors.New("external service error")
	// ErrTimeout is returned when an I/O deadline expires.
	ErrTimeout = errors.New("operation timed out")
)

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Msg       string `json:"msg"`
	Status    string `json:"status"`
	ErrorCode string `json:"errorCode"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Msg:       e.Message,
		Status:    "failed",
		ErrorCode: e.Code,
	}
}

var mappings = []struct {
	target error
	status int
	code   string
}{
	{ErrMissingFields, http.StatusBadRequest, "MISSING_FIELDS"},
	{ErrInvalidType, http.StatusBadRequest, "INVALID_TYPE"},
	{ErrExpiredToken, http.StatusUnauthorized, "EXPIRED_TOKEN"},
	{ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
	{ErrBadCredentials, http.StatusUnauthorized, "BAD_CREDENTIALS"},
	{ErrNoSuchUser, http.StatusNotFound, "NO_USER"},
	{ErrCredentialsExist, http.StatusConflict, "CREDENTIALS_EXIST"},
	{ErrTimeout, http.StatusGatewayTimeout, "TIMEOUT"},
	{ErrStorage, http.StatusInternalServerError, "STORAGE_ERROR"},
	{ErrExternalService, http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR"},
	{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Unknown errors are redacted to a generic message.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return NewHTTPError(m.status, m.target.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "UNKNOWN_ERROR")
}
