package utils

import "fmt"

// MalformedTableError reports a structural problem in the embedded
// error correction table.
type MalformedTableError struct {
	Version int
	Level   string
	message string
}

// NewMalformedTableError creates a new MalformedTableError for the given
// version and level. Level may be empty when the whole version is at fault.
func NewMalformedTableError(version int, level string, message string) *MalformedTableError {
	return &MalformedTableError{Version: version, Level: level, message: message}
}

func (e *MalformedTableError) Error() string {
	if e.Level == "" {
		return fmt.Sprintf("malformed table @ version %d: %s", e.Version, e.message)
	}
	return fmt.Sprintf("malformed table @ version %d / level %s: %s", e.Version, e.Level, e.message)
}
