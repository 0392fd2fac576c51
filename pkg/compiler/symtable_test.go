package compiler

import "testing"

func TestSymbolTableAddAndLookupLocal(t *testing.T) {
	s := NewSymbolTable()
	sym := &Symbol{Kind: SymVar, VarType: "int"}
	if err := s.Add("x", sym); err != nil {
		t.Fatalf("Add(x) returned %v", err)
	}

	got, err := s.LookupLocal("x")
	if err != nil {
		t.Fatalf("LookupLocal(x) returned %v", err)
	}
	if got != sym {
		t.Errorf("LookupLocal(x) = %v, want %v", got, sym)
	}

	got, err = s.LookupLocal("missing")
	if err != nil || got != nil {
		t.Errorf("LookupLocal(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestSymbolTableAddDuplicateFails(t *testing.T) {
	s := NewSymbolTable()
	_ = s.Add("x", &Symbol{Kind: SymVar, VarType: "int"})
	if err := s.Add("x", &Symbol{Kind: SymVar, VarType: "bool"}); err != ErrDuplicate {
		t.Errorf("Add(x) second time = %v, want ErrDuplicate", err)
	}
}

func TestSymbolTableAddIllegalArgument(t *testing.T) {
	s := NewSymbolTable()
	if err := s.Add("", &Symbol{}); err != ErrIllegalArgument {
		t.Errorf("Add(\"\") = %v, want ErrIllegalArgument", err)
	}
	if err := s.Add("x", nil); err != ErrIllegalArgument {
		t.Errorf("Add(x, nil) = %v, want ErrIllegalArgument", err)
	}
}

func TestSymbolTableScopedShadowing(t *testing.T) {
	s := NewSymbolTable()
	outer := &Symbol{Kind: SymVar, VarType: "int"}
	_ = s.Add("x", outer)

	s.PushScope()
	inner := &Symbol{Kind: SymVar, VarType: "bool"}
	_ = s.Add("x", inner)

	got, err := s.LookupGlobal("x")
	if err != nil || got != inner {
		t.Fatalf("LookupGlobal(x) = %v, %v, want inner symbol", got, err)
	}
	local, err := s.LookupLocal("x")
	if err != nil || local != inner {
		t.Fatalf("LookupLocal(x) = %v, %v, want inner symbol", local, err)
	}

	if err := s.PopScope(); err != nil {
		t.Fatalf("PopScope returned %v", err)
	}
	got, err = s.LookupGlobal("x")
	if err != nil || got != outer {
		t.Fatalf("LookupGlobal(x) after pop = %v, %v, want outer symbol", got, err)
	}
}

func TestSymbolTableLookupGlobalMissing(t *testing.T) {
	s := NewSymbolTable()
	got, err := s.LookupGlobal("nonexistent")
	if err != nil || got != nil {
		t.Errorf("LookupGlobal(nonexistent) = %v, %v, want nil, nil", got, err)
	}
}

func TestSymbolTablePopPastEmptyFails(t *testing.T) {
	s := NewSymbolTable()
	if err := s.PopScope(); err != nil {
		t.Fatalf("first PopScope returned %v", err)
	}
	if err := s.PopScope(); err != ErrEmpty {
		t.Errorf("PopScope on empty table = %v, want ErrEmpty", err)
	}
	if _, err := s.LookupLocal("anything"); err != ErrEmpty {
		t.Errorf("LookupLocal on empty table = %v, want ErrEmpty", err)
	}
	if err := s.Add("x", &Symbol{Kind: SymVar, VarType: "int"}); err != ErrEmpty {
		t.Errorf("Add on empty table = %v, want ErrEmpty", err)
	}
}

func TestSymbolStringForm(t *testing.T) {
	varSym := &Symbol{Kind: SymVar, VarType: "int"}
	if got := varSym.String(); got != "int" {
		t.Errorf("var Symbol.String() = %q, want %q", got, "int")
	}

	noArgFn := &Symbol{Kind: SymFunc, RetType: "void"}
	if got := noArgFn.String(); got != "->void" {
		t.Errorf("no-arg function Symbol.String() = %q, want %q", got, "->void")
	}

	fn := &Symbol{Kind: SymFunc, ParamTypes: []string{"int", "bool"}, RetType: "int"}
	if got := fn.String(); got != "int, bool->int" {
		t.Errorf("function Symbol.String() = %q, want %q", got, "int, bool->int")
	}

	structSym := &Symbol{Kind: SymStruct}
	if got := structSym.String(); got != "structdecl" {
		t.Errorf("struct Symbol.String() = %q, want %q", got, "structdecl")
	}
}
