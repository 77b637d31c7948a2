// Package errors defines the structured error taxonomy for the generation
// pipeline. Every failure carries its category and the offending value
// (feature id, board id, conflicting pair) so the CLI can report a precise
// message and map the category to a distinct exit code.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes pipeline failures.
type ErrorType string

const (
	// ErrorTypeConfig covers identifiers not present in the catalogs.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeValidation covers illegal combinations of valid identifiers.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeExists is raised when the output directory already holds a
	// generated project and overwrite was not requested.
	ErrorTypeExists ErrorType = "exists"
	// ErrorTypeRender is an internal invariant violation; a valid build plan
	// failed to render. It should never surface from user input.
	ErrorTypeRender ErrorType = "render"
	// ErrorTypeCommit covers filesystem write failures.
	ErrorTypeCommit ErrorType = "commit"
	// ErrorTypeBuild covers a failed post-generation build step.
	ErrorTypeBuild ErrorType = "build"
)

// Error codes used across the pipeline.
const (
	CodeUnknownFeature      = "unknown_feature"
	CodeUnknownBoard        = "unknown_board"
	CodeConflictingFeatures = "conflicting_features"
	CodeConsoleRequired     = "console_required"
	CodeInvalidOption       = "invalid_option"
	CodeExistingProject     = "existing_project"
	CodeRenderFailed        = "render_failed"
	CodeCommitFailed        = "commit_failed"
	CodeBuildFailed         = "build_failed"
)

// GeneratorError is a structured error with category, code and context.
type GeneratorError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]string
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// Is matches on category and code so callers can compare against sentinel
// errors built with the same constructors.
func (e *GeneratorError) Is(target error) bool {
	var t *GeneratorError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext attaches an identifying value to the error.
func (e *GeneratorError) WithContext(key, value string) *GeneratorError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value

	return e
}

// NewUnknownFeature reports a feature id absent from the feature catalog.
func NewUnknownFeature(featureID string) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeConfig,
		Code:    CodeUnknownFeature,
		Message: fmt.Sprintf("unknown feature %q", featureID),
	}).WithContext("feature", featureID)
}

// NewUnknownBoard reports a board id absent from the board catalog.
func NewUnknownBoard(boardID string) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeConfig,
		Code:    CodeUnknownBoard,
		Message: fmt.Sprintf("unknown board %q", boardID),
	}).WithContext("board", boardID)
}

// NewConflictingFeatures reports the first conflicting pair found.
func NewConflictingFeatures(a, b string) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeValidation,
		Code:    CodeConflictingFeatures,
		Message: fmt.Sprintf("features %q and %q conflict", a, b),
	}).WithContext("feature_a", a).WithContext("feature_b", b)
}

// NewConsoleRequired reports a feature that needs a console while the console
// mode is disabled.
func NewConsoleRequired(featureID string) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeValidation,
		Code:    CodeConsoleRequired,
		Message: fmt.Sprintf("feature %q requires console output, but console mode is none", featureID),
	}).WithContext("feature", featureID)
}

// NewInvalidOption reports a dialect-inconsistent option combination.
func NewInvalidOption(option, reason string) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeValidation,
		Code:    CodeInvalidOption,
		Message: fmt.Sprintf("option %s: %s", option, reason),
	}).WithContext("option", option)
}

// NewExistingProject reports a populated output directory without overwrite.
func NewExistingProject(dir string) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeExists,
		Code:    CodeExistingProject,
		Message: fmt.Sprintf("a project already exists in %s (use --overwrite to replace it)", dir),
	}).WithContext("dir", dir)
}

// NewRenderError reports an internal template inconsistency.
func NewRenderError(file string, cause error) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeRender,
		Code:    CodeRenderFailed,
		Message: fmt.Sprintf("internal: rendering %s failed", file),
		Cause:   cause,
	}).WithContext("file", file)
}

// NewCommitError reports a filesystem write failure.
func NewCommitError(path string, cause error) *GeneratorError {
	return (&GeneratorError{
		Type:    ErrorTypeCommit,
		Code:    CodeCommitFailed,
		Message: fmt.Sprintf("writing %s failed", path),
		Cause:   cause,
	}).WithContext("path", path)
}

// NewBuildError reports a failed external build invocation.
func NewBuildError(cause error) *GeneratorError {
	return &GeneratorError{
		Type:    ErrorTypeBuild,
		Code:    CodeBuildFailed,
		Message: "post-generation build failed",
		Cause:   cause,
	}
}

// Exit codes surfaced by the CLI, one per error category.
const (
	ExitOK         = 0
	ExitGeneric    = 1
	ExitConfig     = 2
	ExitValidation = 3
	ExitExists     = 4
	ExitCommit     = 5
	ExitBuild      = 6
)

// ExitCode maps an error to the process exit code contract.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ge *GeneratorError
	if !errors.As(err, &ge) {
		return ExitGeneric
	}

	switch ge.Type {
	case ErrorTypeConfig:
		return ExitConfig
	case ErrorTypeValidation:
		return ExitValidation
	case ErrorTypeExists:
		return ExitExists
	case ErrorTypeCommit, ErrorTypeRender:
		return ExitCommit
	case ErrorTypeBuild:
		return ExitBuild
	default:
		return ExitGeneric
	}
}

// Is reports whether any error in err's chain matches target. Re-exported so
// callers of this package do not need a second errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// IsType reports whether err is a GeneratorError of the given category.
func IsType(err error, t ErrorType) bool {
	var ge *GeneratorError
	if errors.As(err, &ge) {
		return ge.Type == t
	}

	return false
}
