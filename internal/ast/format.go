package ast

import (
	"bytes"
	"fmt"
	"strings"

	"LFront/internal/lexer"
	"LFront/internal/symbols"

	"gopkg.in/yaml.v3"
)

// View is a printable snapshot of a node with symbol handles resolved to
// names. It serializes to both JSON and YAML.
type View struct {
	Kind       string `json:"kind" yaml:"kind"`
	Line       int    `json:"line,omitempty" yaml:"line,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	Builtin    bool   `json:"builtin,omitempty" yaml:"builtin,omitempty"`
	Value      any    `json:"value,omitempty" yaml:"value,omitempty"`
	Init       *View  `json:"init,omitempty" yaml:"init,omitempty"`
	Statements []View `json:"statements,omitempty" yaml:"statements,omitempty"`
}

func NewView(node Node, table *symbols.Table) *View {
	switch n := node.(type) {
	case nil:
		return nil
	case *Program:
		v := &View{Kind: "Program", Statements: []View{}}
		for _, stmt := range n.Statements {
			v.Statements = append(v.Statements, *NewView(stmt, table))
		}
		return v
	case *VariableDeclare:
		v := &View{
			Kind:    "VariableDeclare",
			Line:    n.Pos,
			Name:    nameOf(table, n.Name),
			Type:    n.Type.Source(table),
			Builtin: n.Type.Kind == lexer.KindKeyword,
		}
		if n.Init != nil {
			v.Init = NewView(n.Init, table)
		}
		return v
	case *Identifier:
		return &View{Kind: "Identifier", Line: n.Pos, Name: nameOf(table, n.Name)}
	case *IntegerLiteral:
		return &View{Kind: "IntegerLiteral", Line: n.Pos, Value: n.Value}
	case *FloatLiteral:
		return &View{Kind: "FloatLiteral", Line: n.Pos, Value: n.Value}
	case *StringLiteral:
		return &View{Kind: "StringLiteral", Line: n.Pos, Value: n.Value}
	}
	return &View{Kind: fmt.Sprintf("%T", node), Line: node.Line()}
}

// YAML renders node as a YAML document with two-space indentation.
func YAML(node Node, table *symbols.Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewView(node, table)); err != nil {
		return nil, fmt.Errorf("ast: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("ast: encoder close: %w", err)
	}
	return buf.Bytes(), nil
}

// Format renders node as an indented outline, one node per line.
func Format(node Node, table *symbols.Table) string {
	var sb strings.Builder
	writeNode(&sb, node, table, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, node Node, table *symbols.Table, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n := node.(type) {
	case nil:
		sb.WriteString(indent + "<nil>\n")
	case *Program:
		fmt.Fprintf(sb, "%sProgram (%d statements)\n", indent, len(n.Statements))
		for _, stmt := range n.Statements {
			writeNode(sb, stmt, table, depth+1)
		}
	case *VariableDeclare:
		fmt.Fprintf(sb, "%sVariableDeclare %s : %s\n", indent, nameOf(table, n.Name), n.Type.Source(table))
		if n.Init != nil {
			writeNode(sb, n.Init, table, depth+1)
		}
	case *Identifier:
		fmt.Fprintf(sb, "%sIdentifier %s\n", indent, nameOf(table, n.Name))
	case *IntegerLiteral:
		fmt.Fprintf(sb, "%sIntegerLiteral %s\n", indent, lexer.IntegerToken(n.Value).Source(nil))
	case *FloatLiteral:
		fmt.Fprintf(sb, "%sFloatLiteral %s\n", indent, lexer.FloatToken(n.Value).Source(nil))
	case *StringLiteral:
		fmt.Fprintf(sb, "%sStringLiteral %s\n", indent, lexer.StringToken(n.Value).Source(nil))
	default:
		fmt.Fprintf(sb, "%s%T\n", indent, node)
	}
}

func nameOf(table *symbols.Table, h symbols.Handle) string {
	if table != nil {
		if name, ok := table.Name(h); ok {
			return name
		}
	}
	return fmt.Sprintf("#%d", h)
}
