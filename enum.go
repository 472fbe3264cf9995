package enumeration

import "encoding/json"

// Member is implemented by every enumeration member. Members are usually
// pointers to structs embedding Enum, but any type with these two methods
// can be declared in a Type.
type Member[K Key] interface {
	// Key returns the member's key. It never changes.
	Key() K
	// Comparer returns the order the member's key is compared with.
	Comparer() Comparer[K]
}

// Enum carries the key and comparer of a member. Embed it in the member type
// to get comparisons, text conversion and encoding for free:
//
//	type Permission struct {
//		enumeration.Enum[int]
//		Name string
//	}
//
//	var PermissionView = &Permission{Enum: enumeration.New(2), Name: "View"}
//
// Equality and ordering of members depend only on their keys.
// A nil member is unequal to every member and neither before nor after
// any of them.
type Enum[K Key] struct {
	key      K
	comparer Comparer[K]
}

// New returns an Enum with the given key and the default comparer for the
// key's domain. It panics if K has no supported key domain.
func New[K Key](key K) Enum[K] {
	return Enum[K]{
		key:      key,
		comparer: DefaultComparer[K](),
	}
}

// NewWithComparer returns an Enum that compares its key with c.
// A nil c selects the default comparer.
func NewWithComparer[K Key](key K, c Comparer[K]) Enum[K] {
	if c == nil {
		c = DefaultComparer[K]()
	}
	return Enum[K]{
		key:      key,
		comparer: c,
	}
}

func (e Enum[K]) Key() K {
	return e.key
}

func (e Enum[K]) Comparer() Comparer[K] {
	if e.comparer == nil {
		return DefaultComparer[K]()
	}
	return e.comparer
}

// Eq reports whether the member's key equals other's key.
func (e Enum[K]) Eq(other Member[K]) bool {
	return !isNil(other) && e.Comparer().Eq(e.key, other.Key())
}

// Neq reports whether the member's key differs from other's key.
func (e Enum[K]) Neq(other Member[K]) bool {
	return isNil(other) || e.Comparer().Neq(e.key, other.Key())
}

// Gt reports whether the member sorts after other.
func (e Enum[K]) Gt(other Member[K]) bool {
	return !isNil(other) && e.Comparer().Gt(e.key, other.Key())
}

// Gte reports whether the member sorts after or equal to other.
func (e Enum[K]) Gte(other Member[K]) bool {
	return !isNil(other) && e.Comparer().Gte(e.key, other.Key())
}

// Lt reports whether the member sorts before other.
func (e Enum[K]) Lt(other Member[K]) bool {
	return !isNil(other) && e.Comparer().Lt(e.key, other.Key())
}

// Lte reports whether the member sorts before or equal to other.
func (e Enum[K]) Lte(other Member[K]) bool {
	return !isNil(other) && e.Comparer().Lte(e.key, other.Key())
}

// Compare returns -1, 0 or +1, for use with the slices package.
func (e Enum[K]) Compare(other Member[K]) int {
	return Compare(e.Comparer(), e.key, other.Key())
}

// Primitive returns the raw key.
func (e Enum[K]) Primitive() K {
	return e.key
}

// String returns the key as text.
func (e Enum[K]) String() string {
	return keyText(e.key)
}

// MarshalText encodes the member as its key text.
func (e Enum[K]) MarshalText() ([]byte, error) {
	return []byte(keyText(e.key)), nil
}

// MarshalJSON encodes the member as its key: a JSON number for integer keys,
// a JSON string for text keys.
func (e Enum[K]) MarshalJSON() ([]byte, error) {
	if DomainOf[K]() == DomainText {
		return json.Marshal(keyText(e.key))
	}
	return []byte(keyText(e.key)), nil
}
