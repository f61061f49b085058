package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrNoFrontmatter is returned when a content file has no frontmatter block
	ErrNoFrontmatter = errors.New("No frontmatter found in file")

	// ErrInvalidMetadata is returned when frontmatter decodes but breaks a field rule
	ErrInvalidMetadata = errors.New("invalid guide metadata")

	// ErrDuplicateSlug is returned when two content files resolve to the same id
	ErrDuplicateSlug = errors.New("duplicate guide slug")

	// ErrIndexUnavailable is returned when the search artifact cannot be loaded
	ErrIndexUnavailable = errors.New("search index not available")

	// ErrIncompatibleIndex is returned when an artifact was built with another schema or field list
	ErrIncompatibleIndex = errors.New("search index built with incompatible settings")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// FrontmatterError represents a content file whose frontmatter block is missing or unreadable
type FrontmatterError struct {
	File  string
	Cause error
}

func (e *FrontmatterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.File, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.File, ErrNoFrontmatter)
}

func (e *FrontmatterError) Is(target error) bool {
	return target == ErrNoFrontmatter && (e.Cause == nil || errors.Is(e.Cause, ErrNoFrontmatter))
}

func (e *FrontmatterError) Unwrap() error {
	return e.Cause
}

// NewFrontmatterError creates a new FrontmatterError
func NewFrontmatterError(file string, cause error) *FrontmatterError {
	return &FrontmatterError{File: file, Cause: cause}
}

// MetadataValidationError represents a frontmatter field that breaks its rule
type MetadataValidationError struct {
	File    string
	Field   string
	Message string
}

func (e *MetadataValidationError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: invalid frontmatter field '%s': %s", e.File, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid frontmatter field '%s': %s", e.Field, e.Message)
}

func (e *MetadataValidationError) Is(target error) bool {
	return target == ErrInvalidMetadata
}

// NewMetadataValidationError creates a new MetadataValidationError
func NewMetadataValidationError(file, field, message string) *MetadataValidationError {
	return &MetadataValidationError{File: file, Field: field, Message: message}
}

// DuplicateSlugError represents two or more files sharing one id
type DuplicateSlugError struct {
	Slug  string
	Files []string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("guide slug '%s' is used by more than one file: %s", e.Slug, strings.Join(e.Files, ", "))
}

func (e *DuplicateSlugError) Is(target error) bool {
	return target == ErrDuplicateSlug
}

// NewDuplicateSlugError creates a new DuplicateSlugError
func NewDuplicateSlugError(slug string, files ...string) *DuplicateSlugError {
	return &DuplicateSlugError{Slug: slug, Files: files}
}

// IndexUnavailableError represents a failed artifact load with its cause
type IndexUnavailableError struct {
	Path  string
	Cause error
}

func (e *IndexUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v (%s): %v", ErrIndexUnavailable, e.Path, e.Cause)
	}
	return fmt.Sprintf("%v (%s)", ErrIndexUnavailable, e.Path)
}

func (e *IndexUnavailableError) Is(target error) bool {
	return target == ErrIndexUnavailable
}

func (e *IndexUnavailableError) Unwrap() error {
	return e.Cause
}

// NewIndexUnavailableError creates a new IndexUnavailableError
func NewIndexUnavailableError(path string, cause error) *IndexUnavailableError {
	return &IndexUnavailableError{Path: path, Cause: cause}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
