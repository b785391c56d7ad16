package models

import "fmt"

// SchemaError reports a malformed input record. It fails the whole batch:
// a broken schema invalidates every downstream aggregate.
type SchemaError struct {
	Row    int
	RowID  string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.RowID != "" {
		return fmt.Sprintf("input schema error at row %d (id %s): field %q: %s", e.Row, e.RowID, e.Field, e.Reason)
	}
	return fmt.Sprintf("input schema error at row %d: field %q: %s", e.Row, e.Field, e.Reason)
}

// ConfigError reports an invalid pipeline configuration (malformed rule
// table, inverted thresholds). Raised before any review is processed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}
