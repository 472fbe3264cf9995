package enumeration

import (
	"fmt"
	"reflect"
	"strconv"
)

// Integer is the integral key domain.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Text is the textual key domain.
type Text interface {
	~string
}

// Key constrains the key type of an enumeration. Every enumeration type has
// exactly one key domain, fixed by its key type.
type Key interface {
	Integer | Text
}

// Domain identifies the key domain of a key type.
type Domain int

const (
	DomainInteger Domain = iota // any ~int or ~uint type
	DomainText                  // any ~string type
)

func (d Domain) String() string {
	switch d {
	case DomainInteger:
		return "integer"
	case DomainText:
		return "text"
	default:
		return "unknown"
	}
}

// DomainOf returns the key domain of K.
// It panics if K's underlying kind is neither integral nor textual.
func DomainOf[K Key]() Domain {
	return domainOfType(reflect.TypeFor[K]())
}

func domainOfType(t reflect.Type) Domain {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return DomainInteger
	case reflect.String:
		return DomainText
	default:
		panic(fmt.Sprintf("enumeration: unsupported key type %s", t))
	}
}

// ParseKey converts text to a key of type K. Integer keys are parsed as
// base-10 numbers sized to K; text keys are taken verbatim.
func ParseKey[K Key](text string) (K, error) {
	var k K
	rv := reflect.ValueOf(&k).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(text)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return k, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, 10, rv.Type().Bits())
		if err != nil {
			return k, err
		}
		rv.SetUint(n)
	default:
		domainOfType(rv.Type())
	}
	return k, nil
}

// keyText is the textual form of a key, the inverse of ParseKey.
// It ignores any String method declared on K.
func keyText[K Key](k K) string {
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	default:
		return strconv.FormatUint(rv.Uint(), 10)
	}
}
