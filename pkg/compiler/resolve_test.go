package compiler

import "testing"

func compileAndResolve(t *testing.T, src string) (*Program, *Diagnostics) {
	t.Helper()
	diags := NewDiagnostics()
	tokens := Lex(src, diags)
	prog, err := Parse(tokens, diags)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	Resolve(prog, diags)
	return prog, diags
}

func TestResolveBindsVarSymbol(t *testing.T) {
	prog, diags := compileAndResolve(t, "int x; void f() { x = 1; }")
	if diags.ErrorOccurred() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Records())
	}
	vd := prog.Decls[0].(*VarDecl)
	if vd.Id.Sym == nil || vd.Id.Sym.VarType != "int" {
		t.Fatalf("x.Sym = %+v, want int var symbol", vd.Id.Sym)
	}

	fd := prog.Decls[1].(*FnDecl)
	as := fd.Body.Stmts[0].(*AssignStmt)
	lhs := as.Assign.Lhs.(*IdNode)
	if lhs.Sym != vd.Id.Sym {
		t.Errorf("use of x resolved to %+v, want the same symbol as the declaration", lhs.Sym)
	}
}

func TestResolveDuplicateDeclaration(t *testing.T) {
	_, diags := compileAndResolve(t, "int x; int x;")
	if !diags.ErrorOccurred() {
		t.Fatal("redeclaring x in the same scope must be an error")
	}
	found := false
	for _, r := range diags.Records() {
		if r.Message == "Multiply declared identifier" {
			found = true
		}
	}
	if !found {
		t.Errorf("records = %+v, want a \"Multiply declared identifier\" diagnostic", diags.Records())
	}
}

func TestResolveShadowingAcrossScopesIsFine(t *testing.T) {
	_, diags := compileAndResolve(t, "int x; void f() { int x; x = 1; }")
	if diags.ErrorOccurred() {
		t.Errorf("shadowing a global in a function body must not error: %+v", diags.Records())
	}
}

func TestResolveUndeclaredIdentifier(t *testing.T) {
	_, diags := compileAndResolve(t, "void f() { x = 1; }")
	recs := diags.Records()
	if len(recs) != 1 || recs[0].Message != "Undeclared identifier" {
		t.Errorf("records = %+v, want one \"Undeclared identifier\"", recs)
	}
}

func TestResolveVoidVariableIsError(t *testing.T) {
	_, diags := compileAndResolve(t, "void x;")
	recs := diags.Records()
	if len(recs) != 1 || recs[0].Message != "Non-function declared void" {
		t.Errorf("records = %+v, want one \"Non-function declared void\"", recs)
	}
}

func TestResolveUnknownStructType(t *testing.T) {
	_, diags := compileAndResolve(t, "struct Ghost g;")
	recs := diags.Records()
	if len(recs) != 1 || recs[0].Message != "Invalid name of struct type" {
		t.Errorf("records = %+v, want one \"Invalid name of struct type\"", recs)
	}
}

func TestResolveCallOfNonFunctionIsNotAnError(t *testing.T) {
	prog, diags := compileAndResolve(t, "int x; void f() { x(); }")
	if diags.ErrorOccurred() {
		t.Fatalf("calling a non-function name is a type error, out of scope here: %+v", diags.Records())
	}
	fd := prog.Decls[1].(*FnDecl)
	cs := fd.Body.Stmts[0].(*CallStmt)
	vd := prog.Decls[0].(*VarDecl)
	if cs.Call.Id.Sym != vd.Id.Sym {
		t.Errorf("x() resolved to %+v, want the same symbol as the declaration of x", cs.Call.Id.Sym)
	}
}

func TestResolveDotAccessOnUndeclaredNameIsSilent(t *testing.T) {
	_, diags := compileAndResolve(t, "void f() { y.a; }")
	recs := diags.Records()
	if len(recs) != 1 || recs[0].Message != "Undeclared identifier" {
		t.Errorf("records = %+v, want exactly one \"Undeclared identifier\" and nothing else", recs)
	}
}

func TestResolveDotAccessOfNonStructReportsLeftIdentifierPosition(t *testing.T) {
	prog, diags := compileAndResolve(t, "int x; void f() { x.y++; }")
	recs := diags.Records()
	if len(recs) != 1 || recs[0].Message != "Dot-access of non-struct type" {
		t.Errorf("records = %+v, want exactly one \"Dot-access of non-struct type\"", recs)
	}
	fd := prog.Decls[1].(*FnDecl)
	left := fd.Body.Stmts[0].(*PostIncStmt).Expr.(*DotAccessExpr).Loc.(*IdNode)
	if recs[0].Pos != left.Pos {
		t.Errorf("diagnostic position = %v, want the left identifier's position %v", recs[0].Pos, left.Pos)
	}
}

func TestResolveStructMemberAccess(t *testing.T) {
	prog, diags := compileAndResolve(t, `
struct Point { int x; int y; };
struct Point p;
void f() { p.x = 1; }`)
	if diags.ErrorOccurred() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Records())
	}

	sd := prog.Decls[0].(*StructDecl)
	memberX, err := sd.SymTable.LookupLocal("x")
	if err != nil || memberX == nil {
		t.Fatalf("struct member x not installed in SymTable: %v, %v", memberX, err)
	}

	fd := prog.Decls[2].(*FnDecl)
	as := fd.Body.Stmts[0].(*AssignStmt)
	dot := as.Assign.Lhs.(*DotAccessExpr)
	if dot.Id.Sym != memberX {
		t.Errorf("p.x resolved to %+v, want the struct's own member symbol %+v", dot.Id.Sym, memberX)
	}
}

func TestResolveInvalidStructFieldName(t *testing.T) {
	_, diags := compileAndResolve(t, `
struct Point { int x; };
struct Point p;
void f() { p.z = 1; }`)
	recs := diags.Records()
	if len(recs) != 1 || recs[0].Message != "Invalid struct field name" {
		t.Errorf("records = %+v, want one \"Invalid struct field name\"", recs)
	}
}

func TestResolveFunctionSignature(t *testing.T) {
	prog, diags := compileAndResolve(t, "int add(int a, bool b) { return a; }")
	if diags.ErrorOccurred() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Records())
	}
	fd := prog.Decls[0].(*FnDecl)
	if fd.Id.Sym.String() != "int, bool->int" {
		t.Errorf("add's symbol = %q, want %q", fd.Id.Sym.String(), "int, bool->int")
	}
}
