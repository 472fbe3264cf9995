// Package enumeration implements closed, ordered enumerations whose members
// are rich values rather than bare constants.
//
// A member type embeds [Enum] to carry its key:
//
//	type Color struct {
//		enumeration.Enum[string]
//		Name string
//	}
//
//	var (
//		ColorRed  = &Color{Enum: enumeration.New("#FF0000"), Name: "Red"}
//		ColorNavy = &Color{Enum: enumeration.New("#000080"), Name: "Navy"}
//	)
//
//	var Colors = enumeration.Define[*Color, string](ColorRed, ColorNavy)
//
// The [Type] returned by [Define] answers lookups and iterates its members in
// key order. Keys are integers or strings; string keys compare
// case-insensitively unless a member is created with [NewWithComparer].
//
// A member that cannot be constructed when its variable is initialized, such
// as one variant of a sealed interface that refers back to the type, is
// declared with [Defer]. The resulting handle behaves like the member and is
// resolved on first use.
package enumeration
