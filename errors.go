package enumeration

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey reports a well-formed key that no member of the type has.
	ErrUnknownKey = errors.New("unknown key")

	// ErrInvalidKey reports text that cannot be converted to the type's key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrDuplicateKey reports two or more members whose keys are equal under
	// the type's comparer.
	ErrDuplicateKey = errors.New("duplicate key")
)

// KeyError describes a failed key operation on an enumeration type.
// Err is one of ErrUnknownKey, ErrInvalidKey or ErrDuplicateKey, possibly
// wrapped together with a cause.
type KeyError struct {
	Type string // enumeration type name
	Key  string // key text as given by the caller
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("enumeration %s: key %q: %v", e.Type, e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}
