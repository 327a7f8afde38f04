package ast

import (
	"encoding/json"
	"strings"
	"testing"

	"LFront/internal/lexer"
	"LFront/internal/symbols"

	"gopkg.in/yaml.v3"
)

func sampleProgram(table *symbols.Table) *Program {
	return &Program{Statements: []Statement{
		&VariableDeclare{
			Name: table.Intern("count"),
			Type: lexer.KeywordToken(lexer.KeywordInt),
			Init: &IntegerLiteral{Value: 5, Pos: 1},
			Pos:  1,
		},
		&VariableDeclare{
			Name: table.Intern("origin"),
			Type: lexer.IdentifierToken(table.Intern("Point")),
			Pos:  2,
		},
	}}
}

func TestFormat(t *testing.T) {
	table := symbols.NewTable()
	out := Format(sampleProgram(table), table)

	want := strings.Join([]string{
		"Program (2 statements)",
		"  VariableDeclare count : int",
		"    IntegerLiteral 5",
		"  VariableDeclare origin : Point",
		"",
	}, "\n")

	if out != want {
		t.Errorf("Unexpected outline:\n%s\nwant:\n%s", out, want)
	}
}

func TestFormatLiterals(t *testing.T) {
	table := symbols.NewTable()
	tests := []struct {
		node Node
		want string
	}{
		{&FloatLiteral{Value: 2.5}, "FloatLiteral 2.5\n"},
		{&StringLiteral{Value: "a\nb"}, "StringLiteral \"a\\nb\"\n"},
		{&Identifier{Name: table.Intern("other")}, "Identifier other\n"},
		{nil, "<nil>\n"},
	}

	for _, tt := range tests {
		if got := Format(tt.node, table); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestViewJSON(t *testing.T) {
	table := symbols.NewTable()
	data, err := json.Marshal(NewView(sampleProgram(table), table))
	if err != nil {
		t.Fatalf("Failed to marshal view: %v", err)
	}

	var decoded View
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal view: %v", err)
	}

	if len(decoded.Statements) != 2 {
		t.Fatalf("Expected 2 statements, got %d", len(decoded.Statements))
	}

	first := decoded.Statements[0]
	if first.Name != "count" || first.Type != "int" || !first.Builtin {
		t.Errorf("Unexpected first statement: %+v", first)
	}
	if first.Init == nil || first.Init.Kind != "IntegerLiteral" {
		t.Fatalf("Expected integer initializer, got %+v", first.Init)
	}

	second := decoded.Statements[1]
	if second.Type != "Point" || second.Builtin || second.Init != nil {
		t.Errorf("Unexpected second statement: %+v", second)
	}
}

func TestYAML(t *testing.T) {
	table := symbols.NewTable()
	data, err := YAML(sampleProgram(table), table)
	if err != nil {
		t.Fatalf("Failed to render yaml: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Rendered yaml does not parse: %v\n%s", err, data)
	}

	if decoded["kind"] != "Program" {
		t.Errorf("Expected Program root, got %v", decoded["kind"])
	}

	if !strings.Contains(string(data), "name: origin") {
		t.Errorf("Expected declaration name in yaml:\n%s", data)
	}
}
