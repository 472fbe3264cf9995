// Package directive parses enumcheck directives from Go source files.
//
// Directives are line comments in the doc comment of a declaration:
//
//	//enumcheck:ignore
//	//enumcheck:owner Name
//
// The ignore directive excludes members created inside the declaration from
// duplicate key checks.
//
// The owner directive attributes members created inside the declaration to
// the named type, for constructors whose result type is not the member type.
package directive

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

const prefix = "//enumcheck:"

// Directive represents a parsed enumcheck directive.
type Directive struct {
	Kind  Kind
	Arg   string         // owner name for KindOwner
	Pos   token.Position // location of the comment
	Start token.Pos      // start of the declaration the directive applies to
	End   token.Pos      // end of that declaration
}

// Covers reports whether pos lies inside the directive's declaration.
func (d Directive) Covers(pos token.Pos) bool {
	return d.Start <= pos && pos < d.End
}

// Kind represents the type of directive.
type Kind string

const (
	KindIgnore Kind = "ignore"
	KindOwner  Kind = "owner"
)

// ParseFile extracts directives from a file parsed with comments.
//
// Returns an error if:
//   - A directive is unknown or malformed
//   - A directive is not part of a declaration's doc comment
func ParseFile(fset *token.FileSet, f *ast.File) ([]Directive, error) {
	type pending struct {
		kind Kind
		arg  string
		pos  token.Position
	}
	byGroup := make(map[*ast.CommentGroup][]pending)
	var order []*ast.CommentGroup

	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if !strings.HasPrefix(c.Text, prefix) {
				continue
			}

			parts := strings.Fields(strings.TrimPrefix(c.Text, prefix))
			pos := fset.Position(c.Pos())
			if len(parts) == 0 {
				return nil, fmt.Errorf("%s: empty %s directive", pos, prefix)
			}

			p := pending{kind: Kind(parts[0]), pos: pos}
			switch p.kind {
			case KindIgnore:
				if len(parts) > 1 {
					return nil, fmt.Errorf("%s: %s%s takes no arguments", pos, prefix, p.kind)
				}
			case KindOwner:
				if len(parts) != 2 {
					return nil, fmt.Errorf("%s: %s%s requires a type name", pos, prefix, p.kind)
				}
				p.arg = parts[1]
			default:
				return nil, fmt.Errorf("%s: unknown directive %s%s", pos, prefix, parts[0])
			}

			if _, ok := byGroup[cg]; !ok {
				order = append(order, cg)
			}
			byGroup[cg] = append(byGroup[cg], p)
		}
	}

	var directives []Directive
	attach := func(doc *ast.CommentGroup, node ast.Node) {
		if doc == nil {
			return
		}
		for _, p := range byGroup[doc] {
			directives = append(directives, Directive{
				Kind:  p.kind,
				Arg:   p.arg,
				Pos:   p.pos,
				Start: node.Pos(),
				End:   node.End(),
			})
		}
		delete(byGroup, doc)
	}

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			attach(d.Doc, d)
		case *ast.GenDecl:
			attach(d.Doc, d)
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					attach(s.Doc, s)
				case *ast.TypeSpec:
					attach(s.Doc, s)
				}
			}
		}
	}

	// Report the first unmatched directive in source order.
	for _, cg := range order {
		if ps, ok := byGroup[cg]; ok {
			return nil, fmt.Errorf("%s: %s%s directive must be in a declaration's doc comment", ps[0].pos, prefix, ps[0].kind)
		}
	}

	return directives, nil
}

// Lookup returns the innermost directive of kind k whose declaration
// contains pos.
func Lookup(directives []Directive, k Kind, pos token.Pos) (Directive, bool) {
	var best Directive
	found := false
	for _, d := range directives {
		if d.Kind != k || !d.Covers(pos) {
			continue
		}
		if !found || d.End-d.Start < best.End-best.Start {
			best, found = d, true
		}
	}
	return best, found
}
