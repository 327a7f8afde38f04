package parser

import (
	"errors"
	"testing"

	"LFront/internal/ast"
	"LFront/internal/lexer"
	"LFront/internal/symbols"
)

func newTestParser(input string) (*Parser, *symbols.Table) {
	table := symbols.NewTable()
	return NewParser(lexer.NewStringLexer(input, table)), table
}

func parseDeclare(t *testing.T, input string) (*ast.VariableDeclare, *symbols.Table) {
	t.Helper()

	p, table := newTestParser(input)
	stmt, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", input, err)
	}

	decl, ok := stmt.(*ast.VariableDeclare)
	if !ok {
		t.Fatalf("Expected *ast.VariableDeclare for %q, got %T", input, stmt)
	}
	return decl, table
}

func TestDeclareWithoutInitializer(t *testing.T) {
	decl, table := parseDeclare(t, "let x : int")

	if h, ok := table.Lookup("x"); !ok || decl.Name != h {
		t.Errorf("Expected name handle for x, got %d", decl.Name)
	}

	if !decl.Type.Equal(lexer.KeywordToken(lexer.KeywordInt)) {
		t.Errorf("Expected type keyword int, got %v", decl.Type)
	}

	if decl.Init != nil {
		t.Errorf("Expected no initializer, got %#v", decl.Init)
	}
}

func TestDeclareWithLiteralInitializer(t *testing.T) {
	decl, _ := parseDeclare(t, "let x : int 5")

	lit, ok := decl.Init.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("Expected integer initializer, got %T", decl.Init)
	}
	if lit.Value != 5 {
		t.Errorf("Expected 5, got %d", lit.Value)
	}
}

func TestDeclareInitializers(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"let ratio : double = 0.25", 0.25},
		{"let name : string \"bob\"", "bob"},
		{"let n : long = 12;", int64(12)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			decl, _ := parseDeclare(t, tt.input)
			if decl.Init == nil {
				t.Fatal("Expected an initializer")
			}
			if got := decl.Init.GetValue(); got != tt.want {
				t.Errorf("Expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestDeclareIdentifierInitializer(t *testing.T) {
	decl, table := parseDeclare(t, "let copy : Point = origin")

	if decl.Type.Kind != lexer.KindIdentifier {
		t.Fatalf("Expected user type, got %v", decl.Type)
	}
	if name, _ := table.Name(decl.Type.Symbol); name != "Point" {
		t.Errorf("Expected type Point, got %q", name)
	}

	ref, ok := decl.Init.(*ast.Identifier)
	if !ok {
		t.Fatalf("Expected identifier initializer, got %T", decl.Init)
	}
	if name, _ := table.Name(ref.Name); name != "origin" {
		t.Errorf("Expected reference to origin, got %q", name)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing name", "let : int", ErrSyntax},
		{"keyword as name", "let int : int", ErrSyntax},
		{"missing colon", "let x int", ErrSyntax},
		{"missing type", "let x :", ErrSyntax},
		{"literal type", "let x : 5", ErrSyntax},
		{"dangling equals", "let x : int =", ErrSyntax},
		{"operator after equals", "let x : int = ;", ErrSyntax},
		{"unknown punctuation", "let x @ int", ErrLexical},
		{"unknown keyword", "struct Point", ErrUnsupported},
		{"identifier statement", "x = 5", ErrUnsupported},
		{"stray punctuation", "; ; @", ErrLexical},
		{"bad number", "let x : int 12ab", ErrLexical},
		{"open comment", "let x : int /* forever", ErrLexical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestParser(tt.input)
			stmt, err := p.ParseStatement()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if stmt != nil {
				t.Errorf("Expected no node on failure, got %#v", stmt)
			}
		})
	}
}

func TestLexicalErrorKeepsCause(t *testing.T) {
	p, _ := newTestParser("let x : int /* forever")

	_, err := p.ParseStatement()
	if !errors.Is(err, lexer.ErrUnterminatedComment) {
		t.Fatalf("Expected unterminated comment cause, got %v", err)
	}
}

func TestErrorCarriesLine(t *testing.T) {
	p, _ := newTestParser("\n\nlet\n: int")

	_, err := p.ParseStatement()
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if perr.Line != 4 {
		t.Errorf("Expected line 4, got %d", perr.Line)
	}
	if !perr.Token.Is(lexer.OpColon) {
		t.Errorf("Expected offending token ':', got %v", perr.Token)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment", "1 2.5 ; ;"} {
		p, _ := newTestParser(input)
		stmt, err := p.ParseStatement()
		if err != nil || stmt != nil {
			t.Errorf("Expected nothing to parse for %q, got %v, %v", input, stmt, err)
		}
	}
}

func TestParseProgram(t *testing.T) {
	input := `
let width : int = 640;
let height : int 480
// user types are identifiers
let origin : Point
let label : string = "corner\tone"
`
	p, table := newTestParser(input)
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("Failed to parse program: %v", err)
	}

	if len(program.Statements) != 4 {
		t.Fatalf("Expected 4 statements, got %d", len(program.Statements))
	}

	names := []string{"width", "height", "origin", "label"}
	lines := []int{2, 3, 5, 6}
	for i, stmt := range program.Statements {
		decl := stmt.(*ast.VariableDeclare)
		if name, _ := table.Name(decl.Name); name != names[i] {
			t.Errorf("Statement %d: expected %s, got %s", i, names[i], name)
		}
		if decl.Line() != lines[i] {
			t.Errorf("Statement %d: expected line %d, got %d", i, lines[i], decl.Line())
		}
	}

	label := program.Statements[3].(*ast.VariableDeclare).Init.(*ast.StringLiteral)
	if label.Value != "corner\tone" {
		t.Errorf("Expected decoded string, got %q", label.Value)
	}
}

func TestParseProgramAbortsOnFailure(t *testing.T) {
	p, _ := newTestParser("let a : int\nlet : int\nlet b : int")

	program, err := p.ParseProgram()
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("Expected syntax error, got %v", err)
	}
	if program != nil {
		t.Errorf("Expected no program on failure, got %#v", program)
	}
}

func TestStatementByStatement(t *testing.T) {
	p, _ := newTestParser("let a : int let b : bool")

	for i := 0; i < 2; i++ {
		stmt, err := p.ParseStatement()
		if err != nil || stmt == nil {
			t.Fatalf("Statement %d: expected declaration, got %v, %v", i, stmt, err)
		}
	}

	for i := 0; i < 2; i++ {
		stmt, err := p.ParseStatement()
		if err != nil || stmt != nil {
			t.Errorf("Expected end of input, got %v, %v", stmt, err)
		}
	}
}
