package ast

import "LFront/internal/symbols"

type Expression interface {
	Node
	GetValue() any
	expressionNode()
}

type IntegerLiteral struct {
	Value int64
	Pos   int
}

func (i *IntegerLiteral) Line() int       { return i.Pos }
func (i *IntegerLiteral) GetValue() any   { return i.Value }
func (i *IntegerLiteral) expressionNode() {}

type FloatLiteral struct {
	Value float64
	Pos   int
}

func (f *FloatLiteral) Line() int       { return f.Pos }
func (f *FloatLiteral) GetValue() any   { return f.Value }
func (f *FloatLiteral) expressionNode() {}

type StringLiteral struct {
	Value string
	Pos   int
}

func (s *StringLiteral) Line() int       { return s.Pos }
func (s *StringLiteral) GetValue() any   { return s.Value }
func (s *StringLiteral) expressionNode() {}

// Identifier is a reference to a name, not a declaration of one.
type Identifier struct {
	Name symbols.Handle
	Pos  int
}

func (i *Identifier) Line() int       { return i.Pos }
func (i *Identifier) GetValue() any   { return i.Name }
func (i *Identifier) expressionNode() {}
