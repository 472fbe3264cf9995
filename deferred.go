package enumeration

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/broady/enumeration/internal/lazy"
)

// Deferred is a member whose construction is postponed until it is first
// used. It lets a type declare members whose values cannot be built at
// declaration time, typically one member per variant of a sealed interface:
//
//	var (
//		ShapeTriangle = enumeration.Defer[Shape, int](func() Shape { return newTriangle() })
//		ShapeSquare   = enumeration.Defer[Shape, int](func() Shape { return newSquare() })
//	)
//
//	var Shapes = enumeration.Define[Shape, int](ShapeTriangle, ShapeSquare)
//
// A Deferred implements Member and forwards every key-based operation to
// the resolved member, so it can stand in for the member anywhere a
// Member[K] is accepted. Use Force to obtain the member itself.
type Deferred[E Member[K], K Key] struct {
	resolve func() E
	value   lazy.Value[E]
}

// Defer wraps resolve in a Deferred. resolve is not called until the handle
// is first used, and is called at most once if it returns normally.
// If resolve panics, the panic propagates to the caller that triggered
// resolution and nothing is cached; the next use calls resolve again.
func Defer[E Member[K], K Key](resolve func() E) *Deferred[E, K] {
	if resolve == nil {
		panic("enumeration: Defer called with nil resolver")
	}
	return &Deferred[E, K]{resolve: resolve}
}

// Force resolves the handle if needed and returns the member.
func (d *Deferred[E, K]) Force() E {
	return d.value.Get(d.resolve)
}

// Resolved reports whether the resolver has completed.
func (d *Deferred[E, K]) Resolved() bool {
	return d.value.Loaded()
}

func (d *Deferred[E, K]) Key() K {
	return d.Force().Key()
}

func (d *Deferred[E, K]) Comparer() Comparer[K] {
	return d.Force().Comparer()
}

func (d *Deferred[E, K]) Eq(other Member[K]) bool {
	m := d.Force()
	return !isNil(other) && m.Comparer().Eq(m.Key(), other.Key())
}

func (d *Deferred[E, K]) Neq(other Member[K]) bool {
	m := d.Force()
	return isNil(other) || m.Comparer().Neq(m.Key(), other.Key())
}

func (d *Deferred[E, K]) Gt(other Member[K]) bool {
	m := d.Force()
	return !isNil(other) && m.Comparer().Gt(m.Key(), other.Key())
}

func (d *Deferred[E, K]) Gte(other Member[K]) bool {
	m := d.Force()
	return !isNil(other) && m.Comparer().Gte(m.Key(), other.Key())
}

func (d *Deferred[E, K]) Lt(other Member[K]) bool {
	m := d.Force()
	return !isNil(other) && m.Comparer().Lt(m.Key(), other.Key())
}

func (d *Deferred[E, K]) Lte(other Member[K]) bool {
	m := d.Force()
	return !isNil(other) && m.Comparer().Lte(m.Key(), other.Key())
}

func (d *Deferred[E, K]) Compare(other Member[K]) int {
	m := d.Force()
	return Compare(m.Comparer(), m.Key(), other.Key())
}

func (d *Deferred[E, K]) Primitive() K {
	return d.Force().Key()
}

// String returns the resolved member's String, or its key text when the
// member has no String method.
func (d *Deferred[E, K]) String() string {
	m := d.Force()
	if s, ok := any(m).(fmt.Stringer); ok {
		return s.String()
	}
	return keyText(m.Key())
}

func (d *Deferred[E, K]) MarshalText() ([]byte, error) {
	m := d.Force()
	if tm, ok := any(m).(encoding.TextMarshaler); ok {
		return tm.MarshalText()
	}
	return []byte(keyText(m.Key())), nil
}

func (d *Deferred[E, K]) MarshalJSON() ([]byte, error) {
	m := d.Force()
	if jm, ok := any(m).(json.Marshaler); ok {
		return jm.MarshalJSON()
	}
	return json.Marshal(m.Key())
}

// unwrap is the escape hatch used by collection and Resolve. It is not
// forwarded, so it always identifies the handle rather than the member.
func (d *Deferred[E, K]) unwrap() any {
	return d.Force()
}

type deferred interface {
	unwrap() any
}

// Resolve reports whether v is an E, looking through a Deferred handle.
// A handle is forced by the check.
func Resolve[E Member[K], K Key](v any) (E, bool) {
	if d, ok := v.(deferred); ok {
		v = d.unwrap()
	}
	e, ok := v.(E)
	return e, ok
}
