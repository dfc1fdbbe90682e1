package fhevm

import (
	"errors"
	"fmt"
)

// Code is a stable machine-readable error code attached to every error the
// client returns. Callers should match on codes via errors.Is with the
// exported sentinels rather than on message text.
type Code string

const (
	CodeNotInitialized   Code = "NOT_INITIALIZED"
	CodeEncryptionFailed Code = "ENCRYPTION_FAILED"
	CodeDecryptionFailed Code = "DECRYPTION_FAILED"
	CodeAborted          Code = "ABORTED"
	CodeClientError      Code = "CLIENT_ERROR"
)

// ClientError is the single error type crossing the client boundary. The
// original failure, if any, is kept as Cause for debugging and exposed via
// Unwrap.
type ClientError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ClientError) Unwrap() error { return e.Cause }

// Is matches any *ClientError carrying the same code, so
// errors.Is(err, ErrNotInitialized) works regardless of message and cause.
func (e *ClientError) Is(target error) bool {
	var ce *ClientError
	if !errors.As(target, &ce) {
		return false
	}
	return e.Code == ce.Code
}

// Sentinels for errors.Is matching. The client never returns these values
// directly; it returns fresh *ClientError values with the same code.
var (
	ErrNotInitialized   = &ClientError{Code: CodeNotInitialized, Message: "client is not initialized"}
	ErrEncryptionFailed = &ClientError{Code: CodeEncryptionFailed, Message: "encryption failed"}
	ErrDecryptionFailed = &ClientError{Code: CodeDecryptionFailed, Message: "decryption failed"}
	ErrAborted          = &ClientError{Code: CodeAborted, Message: "operation aborted"}
)

func newError(code Code, msg string, cause error) *ClientError {
	return &ClientError{Code: code, Message: msg, Cause: cause}
}

func encryptionError(msg string, cause error) *ClientError {
	return newError(CodeEncryptionFailed, msg, cause)
}

func decryptionError(msg string, cause error) *ClientError {
	return newError(CodeDecryptionFailed, msg, cause)
}
