package compiler

// Resolver walks a Program once, post-order, binding every IdNode to its
// declaration's Symbol and reporting every violation it finds through a
// Diagnostics sink rather than stopping at the first one. Struct member
// declarations are installed into the owning StructDecl's own SymTable
// instead of the surrounding scope, so that later dot-access expressions
// can resolve fields without seeing them as ordinary locals.
//
// Struct types share the global namespace with ordinary names and are not
// forward-declared: a struct type name only becomes visible once its own
// StructDecl has been walked, so a use earlier in the file than the
// declaration reports "Invalid name of struct type" the same as a name
// that was never declared at all.
type Resolver struct {
	syms  *SymbolTable
	diags *Diagnostics
}

// Resolve performs name resolution over prog, mutating its AST in place.
func Resolve(prog *Program, diags *Diagnostics) {
	r := &Resolver{
		syms:  NewSymbolTable(),
		diags: diags,
	}
	for _, d := range prog.Decls {
		r.resolveDecl(d)
	}
}

func (r *Resolver) resolveDecl(d Decl) {
	switch n := d.(type) {
	case *VarDecl:
		r.resolveVarDecl(n)
	case *FnDecl:
		r.resolveFnDecl(n)
	case *StructDecl:
		r.resolveStructDecl(n)
	}
}

// lookupStructType resolves a StructType's name globally and reports
// "Invalid name of struct type" if it is missing or does not name a
// struct declaration -- which includes a struct declared later in the
// file than this use, since resolution is a single sequential pass.
func (r *Resolver) lookupStructType(st StructType) *StructDecl {
	sym, err := r.syms.LookupGlobal(st.Id.Name)
	if err != nil || sym == nil || sym.Kind != SymStruct {
		r.diags.Fatal(st.Id.Pos, "Invalid name of struct type")
		return nil
	}
	st.Id.StructDecl = sym.Struct
	st.Id.Sym = sym
	return sym.Struct
}

// resolveVarDecl installs a variable's name into the current scope,
// rejecting void variables and unknown struct type names outright.
func (r *Resolver) resolveVarDecl(v *VarDecl) {
	if _, ok := v.Type.(VoidType); ok {
		r.diags.Fatal(v.Id.Pos, "Non-function declared void")
		return
	}

	var sd *StructDecl
	if st, ok := v.Type.(StructType); ok {
		sd = r.lookupStructType(st)
		if sd == nil {
			return
		}
	}

	sym := &Symbol{Kind: SymVar, VarType: v.Type.Type()}
	if sd != nil {
		sym.Struct = sd
	}
	if err := r.syms.Add(v.Id.Name, sym); err == ErrDuplicate {
		r.diags.Fatal(v.Id.Pos, "Multiply declared identifier")
		return
	}
	v.Id.Sym = sym
	v.Id.StructDecl = sd
}

// resolveStructMember is like resolveVarDecl but installs into the struct's
// own member table instead of the enclosing scope, since fields live in a
// namespace private to their struct.
func (r *Resolver) resolveStructMember(members *SymbolTable, v *VarDecl) {
	if _, ok := v.Type.(VoidType); ok {
		r.diags.Fatal(v.Id.Pos, "Non-function declared void")
		return
	}

	var sd *StructDecl
	if st, ok := v.Type.(StructType); ok {
		sd = r.lookupStructType(st)
		if sd == nil {
			return
		}
	}

	sym := &Symbol{Kind: SymVar, VarType: v.Type.Type()}
	if sd != nil {
		sym.Struct = sd
	}
	if err := members.Add(v.Id.Name, sym); err == ErrDuplicate {
		r.diags.Fatal(v.Id.Pos, "Multiply declared identifier")
		return
	}
	v.Id.Sym = sym
	v.Id.StructDecl = sd
}

// resolveStructDecl installs the struct's own name in the enclosing scope,
// then builds its member table. A struct-typed member resolves its type
// against the outer scope, so a struct can only embed struct types already
// declared above it.
func (r *Resolver) resolveStructDecl(s *StructDecl) {
	sym := &Symbol{Kind: SymStruct, Struct: s}
	if err := r.syms.Add(s.Id.Name, sym); err == ErrDuplicate {
		r.diags.Fatal(s.Id.Pos, "Multiply declared identifier")
	} else {
		s.Id.Sym = sym
	}

	s.SymTable = NewSymbolTable()
	for _, m := range s.Members {
		r.resolveStructMember(s.SymTable, m)
	}
}

// resolveFnDecl installs the function's own name in the enclosing scope
// with its parameter/return-type signature, then pushes one scope shared by
// the formals and the body -- the body does not get a scope of its own.
func (r *Resolver) resolveFnDecl(f *FnDecl) {
	paramTypes := make([]string, len(f.Formals))
	for i, formal := range f.Formals {
		paramTypes[i] = formal.Type.Type()
	}
	sym := &Symbol{Kind: SymFunc, ParamTypes: paramTypes, RetType: f.Type.Type()}
	if err := r.syms.Add(f.Id.Name, sym); err == ErrDuplicate {
		r.diags.Fatal(f.Id.Pos, "Multiply declared identifier")
	} else {
		f.Id.Sym = sym
	}

	r.syms.PushScope()
	for _, formal := range f.Formals {
		r.resolveFormal(formal)
	}
	for _, vd := range f.Body.Decls {
		r.resolveVarDecl(vd)
	}
	for _, st := range f.Body.Stmts {
		r.resolveStmt(st)
	}
	r.syms.PopScope()
}

func (r *Resolver) resolveFormal(f *FormalDecl) {
	if _, ok := f.Type.(VoidType); ok {
		r.diags.Fatal(f.Id.Pos, "Non-function declared void")
		return
	}
	var sd *StructDecl
	if st, ok := f.Type.(StructType); ok {
		sd = r.lookupStructType(st)
		if sd == nil {
			return
		}
	}
	sym := &Symbol{Kind: SymVar, VarType: f.Type.Type()}
	if sd != nil {
		sym.Struct = sd
	}
	if err := r.syms.Add(f.Id.Name, sym); err == ErrDuplicate {
		r.diags.Fatal(f.Id.Pos, "Multiply declared identifier")
		return
	}
	f.Id.Sym = sym
	f.Id.StructDecl = sd
}

func (r *Resolver) resolveStmt(s Stmt) {
	switch n := s.(type) {
	case *AssignStmt:
		r.resolveExpr(n.Assign)
	case *PostIncStmt:
		r.resolveExpr(n.Expr)
	case *PostDecStmt:
		r.resolveExpr(n.Expr)
	case *ReadStmt:
		r.resolveExpr(n.Expr)
	case *WriteStmt:
		r.resolveExpr(n.Expr)
	case *CallStmt:
		r.resolveExpr(n.Call)
	case *ReturnStmt:
		if n.Expr != nil {
			r.resolveExpr(n.Expr)
		}
	case *IfStmt:
		r.resolveExpr(n.Cond)
		r.resolveGuardedBlock(n.Decls, n.Stmts)
	case *IfElseStmt:
		r.resolveExpr(n.Cond)
		r.resolveGuardedBlock(n.ThenDecls, n.ThenStmts)
		r.resolveGuardedBlock(n.ElseDecls, n.ElseStmts)
	case *WhileStmt:
		r.resolveExpr(n.Cond)
		r.resolveGuardedBlock(n.Decls, n.Stmts)
	case *RepeatStmt:
		r.resolveExpr(n.Cond)
		r.resolveGuardedBlock(n.Decls, n.Stmts)
	}
}

// resolveGuardedBlock pushes a fresh scope around a block's own locals and
// statements, used by every construct that introduces a brace-delimited
// body of its own (if/else/while/repeat).
func (r *Resolver) resolveGuardedBlock(decls []*VarDecl, stmts []Stmt) {
	r.syms.PushScope()
	for _, vd := range decls {
		r.resolveVarDecl(vd)
	}
	for _, st := range stmts {
		r.resolveStmt(st)
	}
	r.syms.PopScope()
}

func (r *Resolver) resolveExpr(e Expr) {
	switch n := e.(type) {
	case *IdNode:
		r.resolveId(n)
	case *DotAccessExpr:
		r.resolveDotAccess(n)
	case *AssignExpr:
		r.resolveExpr(n.Lhs)
		r.resolveExpr(n.Rhs)
	case *CallExpr:
		r.resolveCall(n)
	case *UnaryMinusExpr:
		r.resolveExpr(n.Expr)
	case *NotExpr:
		r.resolveExpr(n.Expr)
	case *BinaryExpr:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	}
}

// resolveId binds a bare identifier reference against every enclosing scope.
// When the symbol it finds denotes a struct-typed variable, the struct
// backreference is copied over so a following dot-access can chase it.
func (r *Resolver) resolveId(id *IdNode) {
	sym, err := r.syms.LookupGlobal(id.Name)
	if err != nil || sym == nil {
		r.diags.Fatal(id.Pos, "Undeclared identifier")
		return
	}
	id.Sym = sym
	id.StructDecl = sym.Struct
}

// resolveCall binds the callee name like any other identifier use and
// resolves every argument expression. Whether the name actually denotes a
// function is a type-checking concern, out of scope here.
func (r *Resolver) resolveCall(c *CallExpr) {
	r.resolveId(c.Id)
	for _, arg := range c.Args {
		r.resolveExpr(arg)
	}
}

// resolveDotAccess resolves Loc.Id by first resolving Loc (which must name
// a struct-typed location), then looking Id up in that struct's own member
// table rather than the enclosing scope. A chain of dot-accesses is walked
// left to right, so "a.b.c" resolves "a", then looks up "b" in a's struct,
// then looks up "c" in b's struct. A nil struct from resolveLhsStruct means
// the failure was already reported (or silently propagated) further down,
// so nothing more is emitted here.
func (r *Resolver) resolveDotAccess(d *DotAccessExpr) {
	lhsStruct := r.resolveLhsStruct(d.Loc)
	if lhsStruct == nil {
		return
	}
	sym, err := lhsStruct.SymTable.LookupLocal(d.Id.Name)
	if err != nil || sym == nil {
		r.diags.Fatal(d.Id.Pos, "Invalid struct field name")
		return
	}
	d.Id.Sym = sym
	d.Id.StructDecl = sym.Struct
}

// resolveLhsStruct resolves the left-hand side of a dot-access and returns
// the StructDecl it names, or nil if it does not name a struct-typed value.
// An identifier that fails to resolve at all is left silent here, since
// resolveId already reported "Undeclared identifier" at its position; one
// that resolves but names a non-struct value gets "Dot-access of non-struct
// type" at its own position -- the left identifier's position, per the
// struct-access contract. A nested dot-access is resolved recursively
// through resolveDotAccess, which reports its own failures (or stays silent
// if its own left side already failed), so a failure anywhere in the chain
// propagates up without ever emitting more than one diagnostic for it.
func (r *Resolver) resolveLhsStruct(loc Expr) *StructDecl {
	switch n := loc.(type) {
	case *IdNode:
		r.resolveId(n)
		if n.Sym == nil {
			return nil
		}
		if n.StructDecl == nil {
			r.diags.Fatal(n.Pos, "Dot-access of non-struct type")
			return nil
		}
		return n.StructDecl
	case *DotAccessExpr:
		r.resolveDotAccess(n)
		return n.Id.StructDecl
	default:
		r.resolveExpr(loc)
		return nil
	}
}
