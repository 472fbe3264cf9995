package discover

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupModule writes files into a temporary module that depends on the
// enumeration package in this repository.
func setupModule(t *testing.T, files map[string]string) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	t.Setenv("GOWORK", "off")

	dir := t.TempDir()
	root, err := filepath.Abs("../..")
	require.NoError(t, err)

	goMod := `module test

go 1.25.3

require github.com/broady/enumeration v0.0.0

replace github.com/broady/enumeration => ` + root + `
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0644))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	cmd := exec.Command("go", "mod", "tidy")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOWORK=off")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "go mod tidy:\n%s", out)
	return dir
}

const permissions = `package main

import "github.com/broady/enumeration"

type Permission struct {
	enumeration.Enum[int]
	Name string
}

var (
	PermissionNone = &Permission{Enum: enumeration.New(1), Name: "None"}
	PermissionView = &Permission{Enum: enumeration.New(2), Name: "View"}
	PermissionEdit = &Permission{Enum: enumeration.New(3), Name: "Edit"}
)

var Permissions = enumeration.Define[*Permission, int](PermissionNone, PermissionView, PermissionEdit)

func main() {}
`

func TestFind_Declarations(t *testing.T) {
	dir := setupModule(t, map[string]string{"main.go": permissions})

	result, err := FindDir(".", dir)
	require.NoError(t, err)

	assert.Equal(t, "test", result.PackagePath)
	assert.Equal(t, "test", result.ModulePath)

	require.Len(t, result.Declarations, 1)
	decl := result.Declarations[0]
	assert.Equal(t, "Permissions", decl.Name)
	assert.Equal(t, "*Permission", decl.Member)
	assert.Equal(t, "int", decl.Key)
	assert.Equal(t, 3, decl.Bindings)
	assert.False(t, decl.Spread)
	assert.Equal(t, "main.go", filepath.Base(decl.Pos.Filename))

	require.Len(t, result.Members, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, "Permission", result.Members[i].Owner)
		assert.Equal(t, want, result.Members[i].Key)
		assert.Equal(t, "integer", result.Members[i].Domain)
	}
	assert.Empty(t, result.Duplicates())
}

func TestFind_Members(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantOwner []string
		wantKeys  []string
		wantExact []bool
	}{
		{
			name: "text keys",
			src: `package main

import "github.com/broady/enumeration"

type Color struct {
	enumeration.Enum[string]
}

var Red = &Color{enumeration.New("#FF0000")}

func main() {}
`,
			wantOwner: []string{"Color"},
			wantKeys:  []string{"#FF0000"},
			wantExact: []bool{false},
		},
		{
			name: "explicit instantiation and constructor functions",
			src: `package main

import "github.com/broady/enumeration"

type level uint8

type Tier struct {
	enumeration.Enum[level]
}

func newGold() *Tier {
	t := new(Tier)
	t.Enum = enumeration.New[level](3)
	return t
}

func main() { _ = newGold() }
`,
			wantOwner: []string{"Tier"},
			wantKeys:  []string{"3"},
			wantExact: []bool{false},
		},
		{
			name: "custom comparer",
			src: `package main

import "github.com/broady/enumeration"

type Code struct {
	enumeration.Enum[string]
}

var (
	A = &Code{enumeration.NewWithComparer[string]("abc", enumeration.NumberComparer[string]{})}
	B = &Code{enumeration.NewWithComparer[string]("ABC", nil)}
)

func main() {}
`,
			wantOwner: []string{"Code", "Code"},
			wantKeys:  []string{"abc", "ABC"},
			wantExact: []bool{true, false},
		},
		{
			name: "computed keys are skipped",
			src: `package main

import "github.com/broady/enumeration"

type Color struct {
	enumeration.Enum[string]
}

func key() string { return "#000000" }

var Black = &Color{enumeration.New(key())}

func main() {}
`,
		},
		{
			name: "no enumerations",
			src: `package main

func main() {}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupModule(t, map[string]string{"main.go": tt.src})

			result, err := FindDir(".", dir)
			require.NoError(t, err)

			var owners, keys []string
			var exact []bool
			for _, m := range result.Members {
				owners = append(owners, m.Owner)
				keys = append(keys, m.Key)
				exact = append(exact, m.Exact)
			}
			assert.Equal(t, tt.wantOwner, owners)
			assert.Equal(t, tt.wantKeys, keys)
			assert.Equal(t, tt.wantExact, exact)
		})
	}
}

func TestFind_Duplicates(t *testing.T) {
	dir := setupModule(t, map[string]string{
		"main.go": `package main

import "github.com/broady/enumeration"

type Color struct {
	enumeration.Enum[string]
	Name string
}

type Code struct {
	enumeration.Enum[string]
}

var (
	Red      = &Color{Enum: enumeration.New("#FF0000"), Name: "Red"}
	AlsoRed  = &Color{Enum: enumeration.New("#ff0000"), Name: "Also Red"}
	Navy     = &Color{Enum: enumeration.New("#000080"), Name: "Navy"}
	Upper    = &Code{enumeration.NewWithComparer[string]("X", enumeration.NumberComparer[string]{})}
	Lower    = &Code{enumeration.NewWithComparer[string]("x", enumeration.NumberComparer[string]{})}
)

var Colors = enumeration.Define[*Color, string](Red, AlsoRed, Navy)

func main() {}
`,
	})

	result, err := FindDir(".", dir)
	require.NoError(t, err)

	dups := result.Duplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, "Color", dups[0].Owner)
	assert.Equal(t, "#FF0000", dups[0].Key)
	require.Len(t, dups[0].Members, 2)
	assert.Equal(t, "#ff0000", dups[0].Members[1].Key)
}

func TestFind_Directives(t *testing.T) {
	dir := setupModule(t, map[string]string{
		"main.go": `package main

import "github.com/broady/enumeration"

type Color struct {
	enumeration.Enum[string]
}

var (
	Red = &Color{enumeration.New("#FF0000")}
	//enumcheck:ignore
	Crimson = &Color{enumeration.New("#ff0000")}
)

type Shape interface {
	enumeration.Member[int]
}

type square struct {
	enumeration.Enum[int]
}

type circle struct {
	enumeration.Enum[int]
}

//enumcheck:owner Shape
func newSquare() Shape { return &square{enumeration.New(1)} }

//enumcheck:owner Shape
func newCircle() Shape { return &circle{enumeration.New(1)} }

func main() {}
`,
	})

	result, err := FindDir(".", dir)
	require.NoError(t, err)

	require.Len(t, result.Members, 4)
	assert.False(t, result.Members[0].Ignored)
	assert.True(t, result.Members[1].Ignored)
	assert.Equal(t, "Shape", result.Members[2].Owner)
	assert.Equal(t, "Shape", result.Members[3].Owner)

	dups := result.Duplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, "Shape", dups[0].Owner)
	assert.Equal(t, "1", dups[0].Key)
}

func TestFind_BadDirective(t *testing.T) {
	dir := setupModule(t, map[string]string{
		"main.go": `package main

//enumcheck:skip
func main() {}
`,
	})

	_, err := FindDir(".", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown directive //enumcheck:skip")
}

func TestFind_Errors(t *testing.T) {
	dir := setupModule(t, map[string]string{
		"main.go": `package main

import "github.com/broady/enumeration"

var Broken = enumeration.New()

func main() {}
`,
	})

	_, err := FindDir(".", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package errors")
}
