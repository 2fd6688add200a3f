// Package errors provides standardized error types for the sitecert CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// CertError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_FOUND, EXTERNAL, etc.)
//   - Message: Human-readable error description
//   - Domain: The domain name involved (if applicable)
//   - Stderr: Raw error stream from an external tool (EXTERNAL only)
//   - Err: The underlying wrapped error (if any)
//
// EXTERNAL errors carry the invoked tool's stderr verbatim so the CLI
// can forward it to the operator without reformatting.
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Certificate not found
//	return errors.NotFound("example.com")
//
//	// External tool failed
//	return errors.External("certbot", stderr, err)
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeWebServer, "failed to enable site", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrCertbotNotInstalled) {
//	    // Handle missing certbot
//	}
//
// Use errors.As for type assertion:
//
//	var certErr *errors.CertError
//	if errors.As(err, &certErr) && certErr.Code == errors.ErrCodeExternal {
//	    os.Stderr.Write(certErr.Stderr)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"  // Resource not found
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration error
	ErrCodeExternal   ErrorCode = "EXTERNAL"   // External process failed
	ErrCodeWebServer  ErrorCode = "WEBSERVER"  // Web server site state error
	ErrCodeInspect    ErrorCode = "INSPECT"    // Certificate inspection error
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// CertError represents a structured error with context about the operation.
type CertError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Domain  string    // Domain name (if applicable)
	Stderr  []byte    // Raw stderr from an external tool (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *CertError) Error() string {
	if e.Domain != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Domain, e.Message, e.Err)
	}
	if e.Domain != "" {
		return fmt.Sprintf("%s: %s", e.Domain, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *CertError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *CertError) Is(target error) bool {
	t, ok := target.(*CertError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrCertNotFound indicates the requested domain has no certificate.
	ErrCertNotFound = &CertError{Code: ErrCodeNotFound, Message: "certificate not found"}

	// ErrInvalidDomain indicates the domain name is not valid.
	ErrInvalidDomain = &CertError{Code: ErrCodeValidation, Message: "invalid domain"}

	// ErrCertbotNotInstalled indicates certbot is not on the PATH.
	ErrCertbotNotInstalled = &CertError{Code: ErrCodeExternal, Message: "certbot not installed"}

	// ErrConfigInvalid indicates the configuration is invalid or corrupt.
	ErrConfigInvalid = &CertError{Code: ErrCodeConfig, Message: "invalid configuration"}
)

// NotFound creates an error for a certificate that doesn't exist.
func NotFound(domain string) error {
	return &CertError{
		Code:    ErrCodeNotFound,
		Message: "certificate not found",
		Domain:  domain,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &CertError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// External creates an error for a failed external process, preserving
// the tool's stderr so it can be forwarded verbatim.
func External(tool string, stderr []byte, err error) error {
	return &CertError{
		Code:    ErrCodeExternal,
		Message: fmt.Sprintf("%s failed", tool),
		Stderr:  stderr,
		Err:     err,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &CertError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapDomain creates an error with domain context and underlying error.
func WrapDomain(code ErrorCode, domain string, err error) error {
	return &CertError{
		Code:   code,
		Domain: domain,
		Err:    err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
