package testfixtures

import "github.com/broady/enumeration"

// Shape is a polymorphic enumeration: each member is a distinct variant
// type. The set of variants is closed by the unexported isShape method.
type Shape interface {
	enumeration.Member[int]
	Sides() int
	// Name is implemented by each variant.
	Name() string
	isShape()
}

type shape struct {
	enumeration.Enum[int]
	sides int
}

func (s *shape) Sides() int { return s.sides }
func (*shape) isShape()     {}

type Triangle struct{ shape }
type Square struct{ shape }
type Pentagon struct{ shape }
type Hexagon struct{ shape }
type Heptagon struct{ shape }

func NewTriangle() *Triangle { return &Triangle{shape{Enum: enumeration.New(1), sides: 3}} }
func NewSquare() *Square     { return &Square{shape{Enum: enumeration.New(2), sides: 4}} }
func NewPentagon() *Pentagon { return &Pentagon{shape{Enum: enumeration.New(3), sides: 5}} }
func NewHexagon() *Hexagon   { return &Hexagon{shape{Enum: enumeration.New(4), sides: 6}} }
func NewHeptagon() *Heptagon { return &Heptagon{shape{Enum: enumeration.New(5), sides: 7}} }

func (*Triangle) Name() string { return "triangle" }
func (*Square) Name() string   { return "square" }
func (*Pentagon) Name() string { return "pentagon" }
func (*Hexagon) Name() string  { return "hexagon" }
func (*Heptagon) Name() string { return "heptagon" }

var (
	ShapeTriangle = enumeration.Defer[Shape, int](func() Shape { return NewTriangle() })
	ShapeSquare   = enumeration.Defer[Shape, int](func() Shape { return NewSquare() })
	ShapePentagon = enumeration.Defer[Shape, int](func() Shape { return NewPentagon() })
	ShapeHexagon  = enumeration.Defer[Shape, int](func() Shape { return NewHexagon() })
	ShapeHeptagon = enumeration.Defer[Shape, int](func() Shape { return NewHeptagon() })
)

var Shapes = enumeration.Define[Shape, int](
	ShapeHeptagon,
	ShapeTriangle,
	ShapeHexagon,
	ShapeSquare,
	ShapePentagon,
)
