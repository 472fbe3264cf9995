// Package discover finds enumeration declarations in Go source.
//
// It type-checks a package and reports two kinds of findings:
//   - types declared with enumeration.Define
//   - members created with enumeration.New or enumeration.NewWithComparer
//     from a constant key
//
// Members are attributed to an owner: the type of the composite literal the
// key is assigned into, or the result type of the enclosing function. An
// //enumcheck:owner directive on the enclosing declaration overrides both,
// and //enumcheck:ignore excludes its members from Duplicates.
// Keys built at run time are invisible to the scan.
package discover

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"github.com/broady/enumeration/internal/directive"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// EnumerationPath is the import path of the enumeration package.
const EnumerationPath = "github.com/broady/enumeration"

// Declaration is a call to enumeration.Define.
type Declaration struct {
	Name     string // variable the type is assigned to, if any
	Member   string // member type E
	Key      string // key type K
	Bindings int    // arguments passed to Define
	Spread   bool   // bindings passed as slice...
	Pos      token.Position
}

// Member is a constant-keyed call to enumeration.New or NewWithComparer.
type Member struct {
	Owner   string
	Key     string // key text, unquoted
	Domain  string // "integer" or "text"
	Exact   bool   // compared with a custom comparer
	Ignored bool   // excluded by //enumcheck:ignore
	Pos     token.Position
}

// Duplicate is a key shared by several members of one owner.
type Duplicate struct {
	Owner   string
	Key     string
	Members []Member
}

// Result contains the findings and package info.
type Result struct {
	Declarations []Declaration
	Members      []Member
	PackagePath  string
	ModulePath   string
	ModuleDir    string // directory containing go.mod
	Dir          string // directory containing the package
}

// Find scans a Go package for enumeration declarations.
//
// The pattern follows go command semantics:
//   - "." for current directory
//   - Import path like "github.com/foo/bar"
//   - Absolute or relative directory path
func Find(pattern string) (*Result, error) {
	return FindDir(pattern, "")
}

// FindDir is like Find but allows specifying a working directory.
func FindDir(pattern, dir string) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedModule,
		Dir: dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", pattern)
	}

	if len(pkgs) > 1 {
		return nil, fmt.Errorf("multiple packages found matching %q; specify a single package", pattern)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("package errors: %v", pkg.Errors[0])
	}

	result := &Result{
		PackagePath: pkg.PkgPath,
	}

	if pkg.Module != nil {
		result.ModulePath = pkg.Module.Path
		result.ModuleDir = pkg.Module.Dir
	}

	if len(pkg.GoFiles) > 0 {
		result.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	s := &scanner{pkg: pkg, qual: types.RelativeTo(pkg.Types), result: result}
	for _, f := range pkg.Syntax {
		ds, err := directive.ParseFile(pkg.Fset, f)
		if err != nil {
			return nil, err
		}
		s.directives = append(s.directives, ds...)
	}
	inspector.New(pkg.Syntax).WithStack([]ast.Node{(*ast.CallExpr)(nil)}, s.visit)
	return result, nil
}

type scanner struct {
	pkg        *packages.Package
	qual       types.Qualifier
	result     *Result
	directives []directive.Directive
}

func (s *scanner) visit(n ast.Node, push bool, stack []ast.Node) bool {
	if !push {
		return true
	}
	call := n.(*ast.CallExpr)
	fn := typeutil.StaticCallee(s.pkg.TypesInfo, call)
	if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != EnumerationPath {
		return true
	}
	switch fn.Name() {
	case "Define":
		s.define(call, stack)
	case "New", "NewWithComparer":
		s.member(call, fn.Name() == "NewWithComparer", stack)
	}
	return true
}

func (s *scanner) define(call *ast.CallExpr, stack []ast.Node) {
	info := s.pkg.TypesInfo
	decl := Declaration{
		Name:     assignedName(call, stack),
		Bindings: len(call.Args),
		Spread:   call.Ellipsis.IsValid(),
		Pos:      s.pkg.Fset.Position(call.Pos()),
	}
	if id := funcIdent(call.Fun); id != nil {
		if inst, ok := info.Instances[id]; ok && inst.TypeArgs.Len() == 2 {
			decl.Member = types.TypeString(inst.TypeArgs.At(0), s.qual)
			decl.Key = types.TypeString(inst.TypeArgs.At(1), s.qual)
		}
	}
	s.result.Declarations = append(s.result.Declarations, decl)
}

func (s *scanner) member(call *ast.CallExpr, withComparer bool, stack []ast.Node) {
	if len(call.Args) == 0 {
		return
	}
	info := s.pkg.TypesInfo
	tv, ok := info.Types[call.Args[0]]
	if !ok || tv.Value == nil {
		return
	}

	m := Member{
		Owner: s.owner(stack),
		Pos:   s.pkg.Fset.Position(call.Pos()),
	}
	if d, ok := directive.Lookup(s.directives, directive.KindOwner, call.Pos()); ok {
		m.Owner = d.Arg
	}
	_, m.Ignored = directive.Lookup(s.directives, directive.KindIgnore, call.Pos())
	switch tv.Value.Kind() {
	case constant.String:
		m.Key = constant.StringVal(tv.Value)
		m.Domain = "text"
	case constant.Int:
		m.Key = tv.Value.ExactString()
		m.Domain = "integer"
	default:
		return
	}
	// A nil comparer selects the default one.
	if withComparer && len(call.Args) > 1 && !info.Types[call.Args[1]].IsNil() {
		m.Exact = true
	}
	s.result.Members = append(s.result.Members, m)
}

// owner names the type a member key is assigned into.
func (s *scanner) owner(stack []ast.Node) string {
	info := s.pkg.TypesInfo
	for i := len(stack) - 2; i >= 0; i-- {
		switch n := stack[i].(type) {
		case *ast.CompositeLit:
			if t := info.TypeOf(n); t != nil {
				return types.TypeString(t, s.qual)
			}
		case *ast.FuncLit:
			return ""
		case *ast.FuncDecl:
			obj, ok := info.Defs[n.Name].(*types.Func)
			if !ok {
				return ""
			}
			sig := obj.Type().(*types.Signature)
			if sig.Results().Len() == 0 {
				return ""
			}
			t := sig.Results().At(0).Type()
			if p, ok := t.(*types.Pointer); ok {
				t = p.Elem()
			}
			return types.TypeString(t, s.qual)
		}
	}
	return ""
}

// assignedName returns the variable the expression containing call is
// assigned to, from a var declaration or a := statement.
func assignedName(call *ast.CallExpr, stack []ast.Node) string {
	within := func(e ast.Expr) bool {
		return e.Pos() <= call.Pos() && call.End() <= e.End()
	}
	for i := len(stack) - 2; i >= 0; i-- {
		switch n := stack[i].(type) {
		case *ast.ValueSpec:
			for j, v := range n.Values {
				if within(v) && j < len(n.Names) {
					return n.Names[j].Name
				}
			}
			return ""
		case *ast.AssignStmt:
			for j, v := range n.Rhs {
				if !within(v) || j >= len(n.Lhs) {
					continue
				}
				if id, ok := n.Lhs[j].(*ast.Ident); ok {
					return id.Name
				}
			}
			return ""
		case *ast.FuncLit, *ast.FuncDecl:
			return ""
		}
	}
	return ""
}

// funcIdent returns the identifier naming a called function, looking
// through selectors and explicit instantiation.
func funcIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	}
	return nil
}

// Duplicates groups members of the same owner whose keys are equal.
// Text keys are compared case-insensitively unless the member was created
// with a custom comparer. Members without a known owner and members under
// an ignore directive are skipped.
func (r *Result) Duplicates() []Duplicate {
	type group struct {
		owner, key string
	}
	seen := make(map[group]int)
	var dups []Duplicate
	for _, m := range r.Members {
		if m.Owner == "" || m.Ignored {
			continue
		}
		g := group{m.Owner, m.Key}
		if m.Domain == "text" && !m.Exact {
			g.key = strings.ToLower(m.Key)
		}
		i, ok := seen[g]
		if !ok {
			seen[g] = len(dups)
			dups = append(dups, Duplicate{Owner: m.Owner, Key: m.Key, Members: []Member{m}})
			continue
		}
		dups[i].Members = append(dups[i].Members, m)
	}

	dups = slices.DeleteFunc(dups, func(d Duplicate) bool { return len(d.Members) < 2 })
	slices.SortStableFunc(dups, func(a, b Duplicate) int {
		return cmp.Or(cmp.Compare(a.Owner, b.Owner), cmp.Compare(a.Key, b.Key))
	})
	return dups
}
