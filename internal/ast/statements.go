package ast

import (
	"LFront/internal/lexer"
	"LFront/internal/symbols"
)

type Node interface {
	// Line is where the construct starts in the source.
	Line() int
}

type Statement interface {
	Node
	statementNode()
}

// Program is the root returned when a whole input is parsed.
type Program struct {
	Statements []Statement
}

func (p *Program) Line() int {
	if len(p.Statements) == 0 {
		return 0
	}
	return p.Statements[0].Line()
}

// VariableDeclare is `let name : type [initializer]`. Type keeps the whole
// token because it may be a builtin keyword or a user type name. Init is
// nil when no initializer was written.
type VariableDeclare struct {
	Name symbols.Handle
	Type lexer.Token
	Init Expression
	Pos  int
}

func (v *VariableDeclare) Line() int       { return v.Pos }
func (v *VariableDeclare) statementNode() {}
