package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmpty is returned when a task name is empty after trimming.
	ErrEmpty = errors.New("task name is empty")
	// ErrTooShort is returned when a task name has fewer than two characters.
	ErrTooShort = errors.New("task name is too short")
	// ErrExisting is returned when the user already owns a task with that name.
	ErrExisting = errors.New("task name already exists")
	// ErrTaskNotFound is returned when a task id does not resolve.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAccessDenied is returned when a user acts on a task they do not own.
	ErrAccessDenied = errors.New("access denied")
	// ErrUserNotFound is returned when a username or user id does not resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTooShort is returned when a signup username is too short.
	ErrUsernameTooShort = errors.New("username is too short")
	// ErrPasswordTooShort is returned when a signup password is too short.
	ErrPasswordTooShort = errors.New("password is too short")
	// ErrUsernameTaken is returned when signing up with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrBadCredentials is returned when username or password is incorrect.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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
		Error: e.Message,
		Code:  e.Code,
	}
}

var httpMappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrEmpty, http.StatusBadRequest, "TASK_NAME_EMPTY"},
	{ErrTooShort, http.StatusBadRequest, "TASK_NAME_TOO_SHORT"},
	{ErrExisting, http.StatusConflict, "TASK_NAME_EXISTING"},
	{ErrTaskNotFound, http.StatusNotFound, "TASK_NOT_FOUND"},
	{ErrAccessDenied, http.StatusForbidden, "ACCESS_DENIED"},
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{ErrUsernameTooShort, http.StatusBadRequest, "USERNAME_TOO_SHORT"},
	{ErrPasswordTooShort, http.StatusBadRequest, "PASSWORD_TOO_SHORT"},
	{ErrUsernameTaken, http.StatusConflict, "USERNAME_TAKEN"},
	{ErrBadCredentials, http.StatusUnauthorized, "BAD_CREDENTIALS"},
	{ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Wrapped sentinels are matched with errors.Is.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range httpMappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
