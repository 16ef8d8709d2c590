package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration signals an invalid startup configuration (vocabulary, config file).
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidInput signals a malformed request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTextTooLarge signals a text above the configured size limit.
	ErrTextTooLarge = errors.New("text too large")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrHistoryDisabled signals that analysis history has no backing store.
	ErrHistoryDisabled = errors.New("analysis history disabled")
)

// ConfigurationError describes a rejected vocabulary entry or config value.
// Index is the position of the offending phrase, -1 when not applicable.
type ConfigurationError struct {
	Index  int
	Phrase string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrConfiguration.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: phrase #%d %q: %s", ErrConfiguration.Error(), e.Index, e.Phrase, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// NewConfigurationError creates a configuration error for the phrase at index.
func NewConfigurationError(index int, phrase, reason string) error {
	return &ConfigurationError{Index: index, Phrase: phrase, Reason: reason}
}
