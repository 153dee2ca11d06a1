package ot

import (
	"errors"
	"fmt"
)

// ErrorSeverity represents the severity level of a font decoding error.
type ErrorSeverity int

const (
	// SeverityCritical indicates structural corruption: the table cannot be decoded.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates an inconsistency which makes parts of a table unreliable.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered during decoding of a font table.
// A FontError always aborts the decoding of the table it refers to.
type FontError struct {
	Table    Tag           // The OpenType table where the error occurred (e.g., "GDEF", "GSUB")
	Section  string        // Specific section within the table (e.g., "LigCaretList", "Coverage")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset in the font data where the error occurred (0 if unknown)
	cause    error
}

// Error implements the error interface.
func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Table, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Table, e.Section, e.Issue)
}

// Unwrap returns the underlying decoder error, if any.
func (e FontError) Unwrap() error {
	return e.cause
}

// FontWarning represents a non-critical issue encountered during font decoding.
// Warnings indicate potential problems but do not prevent font usage.
type FontWarning struct {
	Table  Tag    // The OpenType table where the warning occurred
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset in the font data where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

var (
	// ErrUnsupportedFormat is the cause of every FontError reporting an unknown
	// table version or sub-table format discriminant.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrFeatureOrder is returned when a feature is appended to a feature list out of
	// tag order. Feature records are referenced by index from every language system,
	// so the list can only grow at its end and has to stay sorted.
	ErrFeatureOrder = errors.New("feature tags must be appended in non-decreasing order")
)

// errFormat creates a critical FontError for an unsupported version or format.
func errFormat(table Tag, section string, offset int, issue string) error {
	return FontError{
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: SeverityCritical,
		Offset:   uint32(max(offset, 0)),
		cause:    ErrUnsupportedFormat,
	}
}

// errStructure wraps a decoder error into a critical FontError.
// Errors which already are FontErrors are passed through unchanged.
func errStructure(table Tag, section string, offset int, err error) error {
	var ferr FontError
	if errors.As(err, &ferr) {
		return err
	}
	return FontError{
		Table:    table,
		Section:  section,
		Issue:    err.Error(),
		Severity: SeverityCritical,
		Offset:   uint32(max(offset, 0)),
		cause:    err,
	}
}

// errorCollector accumulates non-fatal findings during decoding of a font.
// Fatal errors are not collected, as they abort decoding.
type errorCollector struct {
	warnings []FontWarning
}

// addWarning records a decoding warning.
func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	tracer().Infof("%s: %s", table, issue)
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}
