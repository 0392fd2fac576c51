package compiler

// Program is the root of the abstract syntax tree: a flat list of top-level
// declarations (variables, functions, and struct types), in source order.
type Program struct {
	Decls []Decl
}

// Decl is implemented by every declaration-position node.
type Decl interface {
	declNode()
}

// NotStruct marks a VarDecl whose type is not a struct, matching the sentinel
// used by the source this front end analyzes the way of (-1, never 0, so a
// struct member index of 0 is never confused with "no struct").
const NotStruct = -1

// VarDecl represents a variable declaration: Type Id ;
//
// StructSize is NotStruct unless Type is a StructType, in which case it is 1.
// Struct members carry it by the same rule. The resolver does not read it; it
// checks Type for a StructType directly.
type VarDecl struct {
	Type       Type
	Id         *IdNode
	StructSize int
}

func (*VarDecl) declNode() {}

// FormalDecl represents a single function parameter: Type Id
type FormalDecl struct {
	Type Type
	Id   *IdNode
}

func (*FormalDecl) declNode() {}

// FnBody is the declaration list and statement list inside a function's
// braces. It does not introduce its own scope: the resolver reuses the
// scope pushed for the function's formals.
type FnBody struct {
	Decls []*VarDecl
	Stmts []Stmt
}

// FnDecl represents a function declaration: Type Id ( formals ) { body }
type FnDecl struct {
	Type    Type
	Id      *IdNode
	Formals []*FormalDecl
	Body    *FnBody
}

func (*FnDecl) declNode() {}

// StructDecl represents a struct type declaration: struct Id { members };
//
// Members holds the field declarations; each member's own StructSize follows
// the same NotStruct convention as a regular VarDecl. SymTable is populated
// by the resolver with the struct's own one-scope member symbol table and is
// nil before resolution runs.
type StructDecl struct {
	Id       *IdNode
	Members  []*VarDecl
	SymTable *SymbolTable
}

func (*StructDecl) declNode() {}

// Type is implemented by every type-position node.
type Type interface {
	Type() string
}

// IntType is the "int" type.
type IntType struct{}

func (IntType) Type() string { return "int" }

// BoolType is the "bool" type.
type BoolType struct{}

func (BoolType) Type() string { return "bool" }

// VoidType is the "void" type, legal only as a function return type.
type VoidType struct{}

func (VoidType) Type() string { return "void" }

// StructType names a previously declared struct type: struct Id
type StructType struct {
	Id *IdNode
}

func (s StructType) Type() string { return s.Id.Name }

// Stmt is implemented by every statement-position node.
type Stmt interface {
	stmtNode()
}

// AssignStmt is an assignment expression used as a statement: Assign ;
type AssignStmt struct {
	Assign *AssignExpr
}

func (*AssignStmt) stmtNode() {}

// PostIncStmt represents Expr++ ;
type PostIncStmt struct {
	Expr Expr
}

func (*PostIncStmt) stmtNode() {}

// PostDecStmt represents Expr-- ;
type PostDecStmt struct {
	Expr Expr
}

func (*PostDecStmt) stmtNode() {}

// ReadStmt represents cin >> Expr ;
type ReadStmt struct {
	Expr Expr
}

func (*ReadStmt) stmtNode() {}

// WriteStmt represents cout << Expr ;
type WriteStmt struct {
	Expr Expr
}

func (*WriteStmt) stmtNode() {}

// IfStmt represents if ( Cond ) { Decls Stmts }
type IfStmt struct {
	Cond  Expr
	Decls []*VarDecl
	Stmts []Stmt
}

func (*IfStmt) stmtNode() {}

// IfElseStmt represents if ( Cond ) { ... } else { ... }
type IfElseStmt struct {
	Cond      Expr
	ThenDecls []*VarDecl
	ThenStmts []Stmt
	ElseDecls []*VarDecl
	ElseStmts []Stmt
}

func (*IfElseStmt) stmtNode() {}

// WhileStmt represents while ( Cond ) { Decls Stmts }
type WhileStmt struct {
	Cond  Expr
	Decls []*VarDecl
	Stmts []Stmt
}

func (*WhileStmt) stmtNode() {}

// RepeatStmt represents repeat ( Cond ) { Decls Stmts }
type RepeatStmt struct {
	Cond  Expr
	Decls []*VarDecl
	Stmts []Stmt
}

func (*RepeatStmt) stmtNode() {}

// CallStmt is a function call used as a statement: Call ;
type CallStmt struct {
	Call *CallExpr
}

func (*CallStmt) stmtNode() {}

// ReturnStmt represents return [Expr] ; Expr is nil for a bare "return;".
type ReturnStmt struct {
	Expr Expr
}

func (*ReturnStmt) stmtNode() {}

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// IntLitExpr is an integer literal.
type IntLitExpr struct {
	Pos   Position
	Value int32
}

func (*IntLitExpr) exprNode() {}

// StrLitExpr is a string literal, stored with its surrounding quotes intact
// so unparsing can print it verbatim.
type StrLitExpr struct {
	Pos Position
	Raw string
}

func (*StrLitExpr) exprNode() {}

// TrueExpr is the "true" literal.
type TrueExpr struct {
	Pos Position
}

func (*TrueExpr) exprNode() {}

// FalseExpr is the "false" literal.
type FalseExpr struct {
	Pos Position
}

func (*FalseExpr) exprNode() {}

// IdNode is an identifier, used both in declaration position and as an
// expression referring to a previously declared name. Sym and StructDecl are
// filled in by the resolver and are nil beforehand.
type IdNode struct {
	Pos        Position
	Name       string
	Sym        *Symbol
	StructDecl *StructDecl
}

func (*IdNode) exprNode() {}

func (id *IdNode) String() string { return id.Name }

// DotAccessExpr represents Loc.Id, a struct field access.
type DotAccessExpr struct {
	Loc Expr
	Id  *IdNode
}

func (*DotAccessExpr) exprNode() {}

// AssignExpr represents Lhs = Rhs.
type AssignExpr struct {
	Lhs Expr
	Rhs Expr
}

func (*AssignExpr) exprNode() {}

// CallExpr represents Id ( Args... )
type CallExpr struct {
	Id   *IdNode
	Args []Expr
}

func (*CallExpr) exprNode() {}

// UnaryMinusExpr represents -Expr.
type UnaryMinusExpr struct {
	Expr Expr
}

func (*UnaryMinusExpr) exprNode() {}

// NotExpr represents !Expr.
type NotExpr struct {
	Expr Expr
}

func (*NotExpr) exprNode() {}

// BinaryExpr represents Left Op Right for every binary operator: + - * / &&
// || == != < > <= >=.
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
