// Package businessflow contains the core business logic flows for authentication and company management
package businessflow

import "errors"

// Business flow error constants
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCompanyAlreadyExists = errors.New("company already exists")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrNoCompaniesFound     = errors.New("no companies found")
	ErrInvalidImpactLevel   = errors.New("invalid impact level")
	ErrExportFailed         = errors.New("report export failed")
)

// BusinessError represents a business logic error with context
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsInvalidCredentialsError reports whether the error is a credential failure
func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsCompanyAlreadyExistsError reports whether the error is a duplicate company name
func IsCompanyAlreadyExistsError(err error) bool {
	return errors.Is(err, ErrCompanyAlreadyExists)
}

// IsCompanyNotFoundError reports whether the error is a missing company
func IsCompanyNotFoundError(err error) bool {
	return errors.Is(err, ErrCompanyNotFound)
}

// IsNoCompaniesFoundError reports whether the error is an empty listing
func IsNoCompaniesFoundError(err error) bool {
	return errors.Is(err, ErrNoCompaniesFound)
}

// IsInvalidImpactLevelError reports whether the error is an unaccepted impact level
func IsInvalidImpactLevelError(err error) bool {
	return errors.Is(err, ErrInvalidImpactLevel)
}

// IsExportFailedError reports whether the error came from the report writer
func IsExportFailedError(err error) bool {
	return errors.Is(err, ErrExportFailed)
}
