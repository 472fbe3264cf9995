package enumeration

import "strings"

// Comparer is a total order over keys of type K. For any x and y exactly
// one of Eq, Gt and Lt holds; Neq, Gte and Lte are derived from them.
// Implementations must be stateless and free of side effects.
type Comparer[K Key] interface {
	Eq(x, y K) bool
	Neq(x, y K) bool
	Gt(x, y K) bool
	Gte(x, y K) bool
	Lt(x, y K) bool
	Lte(x, y K) bool
}

// DefaultComparer returns the comparer for K's key domain:
// NumberComparer for integer keys, StringComparer for text keys.
// It panics if K has no supported key domain.
func DefaultComparer[K Key]() Comparer[K] {
	if DomainOf[K]() == DomainText {
		return StringComparer[K]{}
	}
	return NumberComparer[K]{}
}

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y
// under c.
func Compare[K Key](c Comparer[K], x, y K) int {
	switch {
	case c.Lt(x, y):
		return -1
	case c.Gt(x, y):
		return 1
	default:
		return 0
	}
}

// NumberComparer orders keys with Go's built-in operators.
// It is the default for integer keys. On text keys it is case-sensitive.
type NumberComparer[K Key] struct{}

func (NumberComparer[K]) Eq(x, y K) bool  { return x == y }
func (NumberComparer[K]) Neq(x, y K) bool { return x != y }
func (NumberComparer[K]) Gt(x, y K) bool  { return x > y }
func (NumberComparer[K]) Gte(x, y K) bool { return x >= y }
func (NumberComparer[K]) Lt(x, y K) bool  { return x < y }
func (NumberComparer[K]) Lte(x, y K) bool { return x <= y }

// StringComparer orders keys case-insensitively: both operands are
// lowercased before every comparison, so "Red", "red" and "RED" are equal.
// It is the default for text keys.
type StringComparer[K Key] struct{}

func (StringComparer[K]) Eq(x, y K) bool  { return fold(x) == fold(y) }
func (StringComparer[K]) Neq(x, y K) bool { return fold(x) != fold(y) }
func (StringComparer[K]) Gt(x, y K) bool  { return fold(x) > fold(y) }
func (StringComparer[K]) Gte(x, y K) bool { return fold(x) >= fold(y) }
func (StringComparer[K]) Lt(x, y K) bool  { return fold(x) < fold(y) }
func (StringComparer[K]) Lte(x, y K) bool { return fold(x) <= fold(y) }

func fold[K Key](k K) string {
	if s, ok := any(k).(string); ok {
		return strings.ToLower(s)
	}
	return strings.ToLower(keyText(k))
}
