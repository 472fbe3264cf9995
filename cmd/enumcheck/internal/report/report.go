// Package report renders discover results for the enumcheck commands.
package report

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/broady/enumeration/internal/discover"
	"gopkg.in/yaml.v3"
)

// Formats lists the accepted --format values.
const Formats = "text,json,yaml"

// Report is the output of enumcheck list for one package.
type Report struct {
	Package    string      `json:"package" yaml:"package"`
	Types      []Type      `json:"types" yaml:"types"`
	Members    []Member    `json:"members" yaml:"members"`
	Duplicates []Duplicate `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
}

// Type is a Define call. Name is empty when the result is not assigned
// to a variable.
type Type struct {
	Name     string `json:"name" yaml:"name"`
	Member   string `json:"member" yaml:"member"`
	Key      string `json:"key" yaml:"key"`
	Bindings int    `json:"bindings" yaml:"bindings"`
	Pos      string `json:"pos" yaml:"pos"`
}

// Member is a member created from a constant key.
type Member struct {
	Owner   string `json:"owner" yaml:"owner"`
	Key     string `json:"key" yaml:"key"`
	Domain  string `json:"domain" yaml:"domain"`
	Exact   bool   `json:"exact,omitempty" yaml:"exact,omitempty"`
	Ignored bool   `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	Pos     string `json:"pos" yaml:"pos"`
}

// Duplicate lists the positions of members of one owner sharing a key.
type Duplicate struct {
	Owner     string   `json:"owner" yaml:"owner"`
	Key       string   `json:"key" yaml:"key"`
	Positions []string `json:"positions" yaml:"positions"`
}

// New converts a discover result. Positions are made relative to the
// package directory.
func New(r *discover.Result) *Report {
	rep := &Report{
		Package:    r.PackagePath,
		Types:      []Type{},
		Members:    []Member{},
		Duplicates: []Duplicate{},
	}
	for _, d := range r.Declarations {
		rep.Types = append(rep.Types, Type{
			Name:     d.Name,
			Member:   d.Member,
			Key:      d.Key,
			Bindings: d.Bindings,
			Pos:      position(r.Dir, d.Pos),
		})
	}
	for _, m := range r.Members {
		rep.Members = append(rep.Members, member(r.Dir, m))
	}
	for _, d := range r.Duplicates() {
		dup := Duplicate{Owner: d.Owner, Key: d.Key}
		for _, m := range d.Members {
			dup.Positions = append(dup.Positions, position(r.Dir, m.Pos))
		}
		rep.Duplicates = append(rep.Duplicates, dup)
	}
	return rep
}

func member(dir string, m discover.Member) Member {
	return Member{
		Owner:   m.Owner,
		Key:     m.Key,
		Domain:  m.Domain,
		Exact:   m.Exact,
		Ignored: m.Ignored,
		Pos:     position(dir, m.Pos),
	}
}

func position(dir string, pos token.Position) string {
	name := pos.Filename
	if dir != "" {
		if rel, err := filepath.Rel(dir, name); err == nil {
			name = rel
		}
	}
	return name + ":" + strconv.Itoa(pos.Line)
}

// Write renders r to w in the given format.
func Write(w io.Writer, format string, r *Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "package %s\n", r.Package)

	if len(r.Types) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tMEMBER\tKEY\tBINDINGS\tPOSITION")
		for _, t := range r.Types {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", orDash(t.Name), t.Member, t.Key, t.Bindings, t.Pos)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(r.Members) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "OWNER\tKEY\tDOMAIN\tPOSITION")
		for _, m := range r.Members {
			key := m.Key
			if m.Domain == "text" {
				key = strconv.Quote(key)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", orDash(m.Owner), key, m.Domain, m.Pos)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, d := range r.Duplicates {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "duplicate key %q for %s:\n", d.Key, d.Owner)
		for _, p := range d.Positions {
			fmt.Fprintf(w, "\t%s\n", p)
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
