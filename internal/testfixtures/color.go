package testfixtures

import "github.com/broady/enumeration"

// Color is a text-keyed enumeration keyed by hex code.
type Color struct {
	enumeration.Enum[string]
	Name string
	RGB  string
}

var (
	ColorRed    = &Color{Enum: enumeration.New("#FF0000"), Name: "Red", RGB: "rgb(255, 0, 0)"}
	ColorLime   = &Color{Enum: enumeration.New("#00FF00"), Name: "Lime", RGB: "rgb(0, 255, 0)"}
	ColorNavy   = &Color{Enum: enumeration.New("#000080"), Name: "Navy", RGB: "rgb(0, 0, 128)"}
	ColorMaroon = &Color{Enum: enumeration.New("#800000"), Name: "Maroon", RGB: "rgb(128, 0, 0)"}
	ColorSilver = &Color{Enum: enumeration.New("#C0C0C0"), Name: "Silver", RGB: "rgb(192, 192, 192)"}
)

var Colors = enumeration.Define[*Color, string](
	ColorRed,
	ColorLime,
	ColorNavy,
	ColorMaroon,
	ColorSilver,
)
