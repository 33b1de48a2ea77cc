package model

import "fmt"

// ConfigurationError reports missing or unusable caller-side configuration.
// It is raised before any network traffic and is never worth retrying.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Setting, e.Message)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(setting, message string) *ConfigurationError {
	return &ConfigurationError{Setting: setting, Message: message}
}

// AuthenticationError means the service did not accept the credentials.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// AdministrationAccessError means the credentials were accepted but no
// administration is authorized for them, or the administration listing
// could not be read.
type AdministrationAccessError struct {
	Message string
	Cause   error
}

func (e *AdministrationAccessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("administration access: %s (%v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("administration access: %s", e.Message)
}

func (e *AdministrationAccessError) Unwrap() error {
	return e.Cause
}

// NewAdministrationAccessError creates a new administration access error
func NewAdministrationAccessError(message string, cause error) *AdministrationAccessError {
	return &AdministrationAccessError{Message: message, Cause: cause}
}

// RemoteCallError wraps a transport or protocol fault for a named operation.
type RemoteCallError struct {
	Operation string
	Detail    string
	Cause     error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("remote call %s failed: %s", e.Operation, e.Detail)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Cause
}

// NewRemoteCallError creates a new remote call error
func NewRemoteCallError(operation, detail string, cause error) *RemoteCallError {
	return &RemoteCallError{Operation: operation, Detail: detail, Cause: cause}
}

// InvoiceRejectedError is a business rejection of a submitted invoice.
// Response holds the complete result document for audit; partial and
// duplicate submissions can only be diagnosed from it.
type InvoiceRejectedError struct {
	Message  string
	Response string
}

func (e *InvoiceRejectedError) Error() string {
	return fmt.Sprintf("invoice rejected: %s", e.Message)
}

// NewInvoiceRejectedError creates a new invoice rejected error
func NewInvoiceRejectedError(message, response string) *InvoiceRejectedError {
	return &InvoiceRejectedError{Message: message, Response: response}
}
