// Package testcases reads files of grouped test expressions.
//
// Two formats are supported. The YAML format is a list of groups, each with a
// name and a list of cases:
//
//	- name: Basic
//	  cases:
//	    - expr: '1-2-3'
//	      want: '1 - 2 - 3'
//	      tree: 'Minus(Minus(1, 2), 3)'
//
// The text format has no expectations. Each group starts with a header line
// whose first character is a marker and whose remainder is the group name.
// Each following line is an expression, except that lines starting with //
// are comments. A blank line ends the group.
package testcases

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Case is a single test expression.
type Case struct {
	// Expr is the source text.
	Expr string `yaml:"expr"`
	// Want is the expected canonical form of Expr, if not empty.
	Want string `yaml:"want,omitempty"`
	// Tree is the expected expression tree of Expr in function notation, if
	// not empty.
	Tree string `yaml:"tree,omitempty"`
	// Line is the line of the case in a text file. It is zero for YAML.
	Line int `yaml:"-"`
}

// Group is a named list of cases.
type Group struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Set is a list of groups in file order.
type Set []Group

// Group returns the group with the given name, or nil if there is none.
func (s Set) Group(name string) *Group {
	for i := range s {
		if s[i].Name == name {
			return &s[i]
		}
	}
	return nil
}

// Len returns the total number of cases in all groups.
func (s Set) Len() int {
	n := 0
	for _, g := range s {
		n += len(g.Cases)
	}
	return n
}

// ReadText reads a set in the text format.
func ReadText(r io.Reader) (Set, error) {
	var set Set
	var cur *Group
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		switch {
		case cur == nil && text == "":
			continue
		case cur == nil:
			if len(text) < 2 {
				return nil, fmt.Errorf("line %d: group header without a name", line)
			}
			set = append(set, Group{Name: strings.TrimSpace(text[1:])})
			cur = &set[len(set)-1]
		case text == "":
			cur = nil
		case strings.HasPrefix(text, "//"):
			continue
		default:
			cur.Cases = append(cur.Cases, Case{Expr: text, Line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading test cases: %w", err)
	}
	return set, nil
}

// ReadYAML reads a set in the YAML format.
func ReadYAML(r io.Reader) (Set, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading test cases: %w", err)
	}
	var set Set
	if err := yaml.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("decoding test cases: %w", err)
	}
	for _, g := range set {
		if g.Name == "" {
			return nil, errors.New("group without a name")
		}
		for i, c := range g.Cases {
			if c.Expr == "" {
				return nil, fmt.Errorf("group %q: case %d has no expr", g.Name, i)
			}
		}
	}
	return set, nil
}

// Load reads a set from a file. Files named *.yaml or *.yml are read in the
// YAML format, and anything else in the text format.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return ReadText(f)
	}
}
