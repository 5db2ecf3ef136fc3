package shared

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeTopicNotFound                = "TOPIC_NOT_FOUND"
	CodeConversationNotFound         = "CONVERSATION_NOT_FOUND"
	CodeConversationAlreadyCompleted = "CONVERSATION_ALREADY_COMPLETED"
	CodeConversationEmpty            = "CONVERSATION_EMPTY"
	CodeUserNotFound                 = "USER_NOT_FOUND"
	CodeFeedbackNotFound             = "FEEDBACK_NOT_FOUND"
	CodeFeedbackServiceError         = "FEEDBACK_SERVICE_ERROR"
	CodeAiServiceError               = "AI_SERVICE_ERROR"
	CodeTranscriptionError           = "TRANSCRIPTION_ERROR"
	CodeStorageError                 = "STORAGE_ERROR"
	CodeValidationError              = "VALIDATION_ERROR"
	CodeBadRequest                   = "BAD_REQUEST"
	CodeConflict                     = "CONFLICT"
	CodeForbidden                    = "FORBIDDEN"
	CodeRateLimited                  = "RATE_LIMITED"
	CodeUnauthorized                 = "UNAUTHORIZED"
)

// AppError is a failure the HTTP layer can render as-is. Anything that is
// not an AppError becomes a generic 500.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Data       interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches on Code so callers can compare against the sentinel constructors.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Code == code
}

func newAppError(status int, code, message string, err error) *AppError {
	return &AppError{StatusCode: status, Code: code, Message: message, Err: err}
}

func NewTopicNotFoundError() *AppError {
	return newAppError(http.StatusNotFound, CodeTopicNotFound, "Topic not found or inactive", nil)
}

func NewConversationNotFoundError() *AppError {
	return newAppError(http.StatusNotFound, CodeConversationNotFound, "Conversation not found", nil)
}

func NewConversationAlreadyCompletedError() *AppError {
	return newAppError(http.StatusConflict, CodeConversationAlreadyCompleted, "Conversation is already completed or abandoned", nil)
}

func NewConversationEmptyError() *AppError {
	return newAppError(http.StatusUnprocessableEntity, CodeConversationEmpty, "Conversation has no user messages to evaluate", nil)
}

func NewUserNotFoundError() *AppError {
	return newAppError(http.StatusNotFound, CodeUserNotFound, "User not found", nil)
}

func NewFeedbackNotFoundError() *AppError {
	return newAppError(http.StatusNotFound, CodeFeedbackNotFound, "Conversation has no feedback yet", nil)
}

func NewFeedbackServiceError(err error) *AppError {
	return newAppError(http.StatusFailedDependency, CodeFeedbackServiceError, "Failed to analyze conversation", err)
}

func NewAiServiceError(err error) *AppError {
	return newAppError(http.StatusFailedDependency, CodeAiServiceError, "Failed to generate response", err)
}

func NewTranscriptionError(err error) *AppError {
	return newAppError(http.StatusFailedDependency, CodeTranscriptionError, "Failed to transcribe audio", err)
}

func NewStorageError(err error) *AppError {
	return newAppError(http.StatusFailedDependency, CodeStorageError, "Storage operation failed", err)
}

func NewValidationError(err error, details interface{}) *AppError {
	appErr := newAppError(http.StatusBadRequest, CodeValidationError, "Validation failed", err)
	appErr.Data = details
	return appErr
}

func NewBadRequestError(err error, message string) *AppError {
	return newAppError(http.StatusBadRequest, CodeBadRequest, message, err)
}

func NewConflictError(err error) *AppError {
	return newAppError(http.StatusConflict, CodeConflict, "Resource already exists", err)
}

func NewForbiddenError(message string) *AppError {
	return newAppError(http.StatusForbidden, CodeForbidden, message, nil)
}

func NewRateLimitedError() *AppError {
	return newAppError(http.StatusTooManyRequests, CodeRateLimited, "Too many requests", nil)
}

func NewUnauthorizedError(err error) *AppError {
	return newAppError(http.StatusUnauthorized, CodeUnauthorized, "Unauthorized", err)
}
