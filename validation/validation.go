// Package validation checks enumeration membership with
// github.com/go-playground/validator.
//
// Register a tag per enumeration type, then use it on integer or string
// fields holding keys:
//
//	v := validator.New()
//	validation.Register(v, "permission", Permissions)
//
//	type Grant struct {
//		Permission int `validate:"required,permission"`
//	}
package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/broady/enumeration"
	"github.com/go-playground/validator/v10"
)

// Register adds tag to v as a check that a field holds the key of a member
// of typ. Like all validator registrations it must happen before v is used.
func Register[E enumeration.Member[K], K enumeration.Key](v *validator.Validate, tag string, typ *enumeration.Type[E, K]) error {
	if err := v.RegisterValidation(tag, Func(typ)); err != nil {
		return fmt.Errorf("register %s validation for %s: %w", tag, typ.Name(), err)
	}
	return nil
}

// Func returns the validator.Func behind Register.
//
// The field must be of the same key domain as K: integer fields for integer
// keys and string fields for text keys. Integer values that do not fit K
// fail. Text keys are matched with the members' comparer, so the default is
// case-insensitive.
func Func[E enumeration.Member[K], K enumeration.Key](typ *enumeration.Type[E, K]) validator.Func {
	return func(fl validator.FieldLevel) bool {
		key, ok := keyOf[K](fl.Field())
		return ok && typ.Has(key)
	}
}

// Message renders a failed membership check of typ for users,
// e.g. "Permission must be one of: 1, 2, 3".
func Message[E enumeration.Member[K], K enumeration.Key](fe validator.FieldError, typ *enumeration.Type[E, K]) string {
	keys := make([]string, 0, typ.Len())
	for k := range typ.Keys() {
		keys = append(keys, fmt.Sprint(k))
	}
	return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(keys, ", "))
}

// keyOf converts a field value to K without loss.
func keyOf[K enumeration.Key](v reflect.Value) (K, bool) {
	var zero K
	kt := reflect.TypeFor[K]()

	switch v.Kind() {
	case reflect.String:
		if enumeration.DomainOf[K]() != enumeration.DomainText {
			return zero, false
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if enumeration.DomainOf[K]() != enumeration.DomainInteger || !fits(v, kt) {
			return zero, false
		}
	default:
		return zero, false
	}
	return v.Convert(kt).Interface().(K), true
}

// fits reports whether the integer held by v is representable in kt.
func fits(v reflect.Value, kt reflect.Type) bool {
	signed := kt.Kind() >= reflect.Int && kt.Kind() <= reflect.Int64
	if v.CanInt() {
		n := v.Int()
		if signed {
			return !kt.OverflowInt(n)
		}
		return n >= 0 && !kt.OverflowUint(uint64(n))
	}
	u := v.Uint()
	if signed {
		return u <= math.MaxInt64 && !kt.OverflowInt(int64(u))
	}
	return !kt.OverflowUint(u)
}
