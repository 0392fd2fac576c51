package compiler

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

func indent(level int) string {
	return strings.Repeat(indentUnit, level)
}

// Unparse renders prog as canonical source text: every identifier is
// annotated with the Symbol the resolver bound to it, every expression is
// fully parenthesized except an assignment used directly as a statement,
// and every brace-delimited body is reindented from scratch. Unparse is the
// test oracle. Apart from the symbol annotations, its output re-parses to the
// same tree, with one exception: a dot-access is always printed as
// "(loc).id", and the parser does not accept that form at the start of a
// statement or after "cin >>", where it takes only a plain id.id location.
func Unparse(prog *Program) string {
	var b strings.Builder
	for _, d := range prog.Decls {
		unparseDecl(&b, d, 0)
	}
	return b.String()
}

// unparseId renders a name with its bound symbol in parentheses, e.g.
// "x(int)" or "add(int, int->int)". An unresolved identifier -- only
// possible for a name that failed resolution -- prints bare.
func unparseId(id *IdNode) string {
	if id.Sym == nil {
		return id.Name
	}
	return fmt.Sprintf("%s(%s)", id.Name, id.Sym.String())
}

func unparseType(t Type) string {
	switch v := t.(type) {
	case IntType:
		return "int"
	case BoolType:
		return "bool"
	case VoidType:
		return "void"
	case StructType:
		return "struct " + unparseId(v.Id)
	default:
		return "?"
	}
}

func unparseDecl(b *strings.Builder, d Decl, lvl int) {
	switch n := d.(type) {
	case *VarDecl:
		fmt.Fprintf(b, "%s%s %s;\n", indent(lvl), unparseType(n.Type), unparseId(n.Id))
	case *FnDecl:
		unparseFnDecl(b, n, lvl)
	case *StructDecl:
		unparseStructDecl(b, n, lvl)
	}
}

func unparseFormals(formals []*FormalDecl) string {
	parts := make([]string, len(formals))
	for i, f := range formals {
		parts[i] = unparseType(f.Type) + " " + unparseId(f.Id)
	}
	return strings.Join(parts, ", ")
}

func unparseFnDecl(b *strings.Builder, f *FnDecl, lvl int) {
	fmt.Fprintf(b, "%s%s %s(%s) {\n", indent(lvl), unparseType(f.Type), unparseId(f.Id), unparseFormals(f.Formals))
	for _, vd := range f.Body.Decls {
		unparseDecl(b, vd, lvl+1)
	}
	for _, st := range f.Body.Stmts {
		unparseStmt(b, st, lvl+1)
	}
	fmt.Fprintf(b, "%s}\n\n", indent(lvl))
}

func unparseStructDecl(b *strings.Builder, s *StructDecl, lvl int) {
	fmt.Fprintf(b, "%sstruct %s{\n", indent(lvl), unparseId(s.Id))
	for _, m := range s.Members {
		unparseDecl(b, m, lvl+1)
	}
	fmt.Fprintf(b, "%s};\n\n", indent(lvl))
}

func unparseBlock(b *strings.Builder, decls []*VarDecl, stmts []Stmt, lvl int) {
	for _, vd := range decls {
		unparseDecl(b, vd, lvl)
	}
	for _, st := range stmts {
		unparseStmt(b, st, lvl)
	}
}

func unparseStmt(b *strings.Builder, s Stmt, lvl int) {
	ind := indent(lvl)
	switch n := s.(type) {
	case *AssignStmt:
		fmt.Fprintf(b, "%s%s;\n", ind, unparseAssign(n.Assign, true))
	case *PostIncStmt:
		fmt.Fprintf(b, "%s%s++;\n", ind, unparseExpr(n.Expr))
	case *PostDecStmt:
		fmt.Fprintf(b, "%s%s--;\n", ind, unparseExpr(n.Expr))
	case *ReadStmt:
		fmt.Fprintf(b, "%scin >> %s;\n", ind, unparseExpr(n.Expr))
	case *WriteStmt:
		fmt.Fprintf(b, "%scout << %s;\n", ind, unparseExpr(n.Expr))
	case *CallStmt:
		fmt.Fprintf(b, "%s%s;\n", ind, unparseExpr(n.Call))
	case *ReturnStmt:
		if n.Expr == nil {
			fmt.Fprintf(b, "%sreturn;\n", ind)
		} else {
			fmt.Fprintf(b, "%sreturn %s;\n", ind, unparseExpr(n.Expr))
		}
	case *IfStmt:
		fmt.Fprintf(b, "%sif (%s) {\n", ind, unparseExpr(n.Cond))
		unparseBlock(b, n.Decls, n.Stmts, lvl+1)
		fmt.Fprintf(b, "%s}\n", ind)
	case *IfElseStmt:
		fmt.Fprintf(b, "%sif (%s) {\n", ind, unparseExpr(n.Cond))
		unparseBlock(b, n.ThenDecls, n.ThenStmts, lvl+1)
		fmt.Fprintf(b, "%s}\n%selse {\n", ind, ind)
		unparseBlock(b, n.ElseDecls, n.ElseStmts, lvl+1)
		fmt.Fprintf(b, "%s}\n", ind)
	case *WhileStmt:
		fmt.Fprintf(b, "%swhile (%s) {\n", ind, unparseExpr(n.Cond))
		unparseBlock(b, n.Decls, n.Stmts, lvl+1)
		fmt.Fprintf(b, "%s}\n", ind)
	case *RepeatStmt:
		fmt.Fprintf(b, "%srepeat (%s) {\n", ind, unparseExpr(n.Cond))
		unparseBlock(b, n.Decls, n.Stmts, lvl+1)
		fmt.Fprintf(b, "%s}\n", ind)
	}
}

// unparseAssign renders Lhs = Rhs. asStmt suppresses the surrounding
// parentheses an assignment otherwise always gets as an expression --
// true only when called directly from an AssignStmt.
func unparseAssign(a *AssignExpr, asStmt bool) string {
	s := unparseExpr(a.Lhs) + " = " + unparseExpr(a.Rhs)
	if asStmt {
		return s
	}
	return "(" + s + ")"
}

func unparseExpr(e Expr) string {
	switch n := e.(type) {
	case *IntLitExpr:
		return fmt.Sprintf("%d", n.Value)
	case *StrLitExpr:
		return n.Raw
	case *TrueExpr:
		return "true"
	case *FalseExpr:
		return "false"
	case *IdNode:
		return unparseId(n)
	case *DotAccessExpr:
		return "(" + unparseExpr(n.Loc) + ")." + unparseId(n.Id)
	case *AssignExpr:
		return unparseAssign(n, false)
	case *CallExpr:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = unparseExpr(a)
		}
		return unparseId(n.Id) + "(" + strings.Join(args, ", ") + ")"
	case *UnaryMinusExpr:
		return "(-" + unparseExpr(n.Expr) + ")"
	case *NotExpr:
		return "(!" + unparseExpr(n.Expr) + ")"
	case *BinaryExpr:
		return "(" + unparseExpr(n.Left) + " " + n.Op.String() + " " + unparseExpr(n.Right) + ")"
	default:
		return ""
	}
}
