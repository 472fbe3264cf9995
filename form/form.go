// Package form decodes enumeration keys from HTML forms and query strings
// with github.com/gorilla/schema.
package form

import (
	"fmt"
	"reflect"

	"github.com/broady/enumeration"
	"github.com/gorilla/schema"
)

// RegisterConverter makes d decode fields of type K, *K and []K as keys of
// typ. Submitted text is looked up with the members' comparer and replaced
// by the member's declared key, so "#ff0000" decodes as "#FF0000". Unknown
// or malformed keys are reported as a schema.ConversionError for the field.
// An empty value decodes as the zero key.
//
// K must be a named type. Registering a converter for a predeclared type
// such as int or string would change how every field of that type is
// decoded, so RegisterConverter refuses it.
func RegisterConverter[E enumeration.Member[K], K enumeration.Key](d *schema.Decoder, typ *enumeration.Type[E, K]) error {
	kt := reflect.TypeFor[K]()
	if kt.PkgPath() == "" {
		return fmt.Errorf("form: %s: key type %s is not a named type", typ.Name(), kt)
	}
	var zero K
	d.RegisterConverter(zero, Converter(typ))
	return nil
}

// Converter returns the schema.Converter behind RegisterConverter.
func Converter[E enumeration.Member[K], K enumeration.Key](typ *enumeration.Type[E, K]) schema.Converter {
	return func(text string) reflect.Value {
		if text == "" {
			var zero K
			return reflect.ValueOf(zero)
		}
		m, err := typ.Parse(text)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(m.Key())
	}
}
