package enumeration

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/broady/enumeration/internal/lazy"
)

// Type is a closed, ordered enumeration of members of type E keyed by K.
//
// A Type is declared once, usually as a package-level variable, from the
// list of its members:
//
//	var Permissions = enumeration.Define[*Permission, int](
//		PermissionNone,
//		PermissionView,
//		PermissionEdit,
//	)
//
// The member list is collected into a sorted Table on the first query and
// cached for the lifetime of the Type. All methods are safe for concurrent
// use.
type Type[E Member[K], K Key] struct {
	name     string
	bindings []Member[K]
	table    lazy.Value[*Table[E, K]]
}

// Define declares an enumeration type from its members in declaration
// order. Each binding is a member, a *Deferred resolving to a member, or
// nil. Nil bindings and values that are not an E are ignored when the table
// is built. Keys must be unique under the members' comparer; Check reports
// violations.
func Define[E Member[K], K Key](bindings ...Member[K]) *Type[E, K] {
	return &Type[E, K]{
		name:     reflect.TypeFor[E]().String(),
		bindings: slices.Clone(bindings),
	}
}

// WithName sets the name used in errors. It defaults to the Go type of E.
// It returns the type for chaining.
func (t *Type[E, K]) WithName(name string) *Type[E, K] {
	t.name = name
	return t
}

// Name returns the type's name.
func (t *Type[E, K]) Name() string {
	return t.name
}

// Map returns the type's table, building it on first use.
// The table is shared by all callers and must not be modified.
func (t *Type[E, K]) Map() *Table[E, K] {
	return t.table.Get(t.collect)
}

func (t *Type[E, K]) collect() *Table[E, K] {
	return collect[E, K](t.bindings)
}

// Resolved reports whether the table has been built.
func (t *Type[E, K]) Resolved() bool {
	return t.table.Loaded()
}

// Get returns the member with the given key. Text keys are matched
// case-insensitively unless the members use a custom comparer.
func (t *Type[E, K]) Get(key K) (E, bool) {
	return t.Map().Get(key)
}

// Has reports whether a member has the given key.
func (t *Type[E, K]) Has(key K) bool {
	return t.Map().Has(key)
}

// Contains reports whether m's key belongs to the type.
func (t *Type[E, K]) Contains(m Member[K]) bool {
	if isNil(m) {
		return false
	}
	return t.Map().Has(m.Key())
}

// MustGet is like Get but panics with a *KeyError if key is unknown.
func (t *Type[E, K]) MustGet(key K) E {
	m, ok := t.Get(key)
	if !ok {
		panic(&KeyError{Type: t.name, Key: keyText(key), Err: ErrUnknownKey})
	}
	return m
}

// Parse converts text to a key and returns its member. The error is a
// *KeyError wrapping ErrInvalidKey if text is not a valid key, or
// ErrUnknownKey if no member has the key.
func (t *Type[E, K]) Parse(text string) (E, error) {
	var zero E
	key, err := ParseKey[K](text)
	if err != nil {
		return zero, &KeyError{Type: t.name, Key: text, Err: fmt.Errorf("%w: %w", ErrInvalidKey, err)}
	}
	m, ok := t.Get(key)
	if !ok {
		return zero, &KeyError{Type: t.name, Key: text, Err: ErrUnknownKey}
	}
	return m, nil
}

// Len returns the number of members.
func (t *Type[E, K]) Len() int {
	return t.Map().Len()
}

// Keys returns the member keys in order.
func (t *Type[E, K]) Keys() iter.Seq[K] {
	return t.Map().Keys()
}

// Values returns the members in key order.
func (t *Type[E, K]) Values() iter.Seq[E] {
	return t.Map().Values()
}

// Entries returns key, member pairs in key order.
func (t *Type[E, K]) Entries() iter.Seq2[K, E] {
	return t.Map().Entries()
}

// All is the default iteration over the type. It is the same as Values.
//
//	for p := range Permissions.All() {
//		fmt.Println(p.Name)
//	}
func (t *Type[E, K]) All() iter.Seq[E] {
	return t.Map().Values()
}

// Check reports members whose keys collide. It returns nil when all keys
// are distinct, otherwise one *KeyError wrapping ErrDuplicateKey per
// colliding key, joined with errors.Join.
func (t *Type[E, K]) Check() error {
	var errs []error
	for _, run := range t.Map().duplicates() {
		errs = append(errs, &KeyError{
			Type: t.name,
			Key:  keyText(run[0].Key),
			Err:  fmt.Errorf("%w: declared by %d members", ErrDuplicateKey, len(run)),
		})
	}
	return errors.Join(errs...)
}
