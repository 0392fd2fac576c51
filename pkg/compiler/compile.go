package compiler

// Result collects everything a single compilation pass produced: the token
// stream, the resolved AST (nil if parsing failed), every diagnostic raised
// along the way, and the canonical unparse of the AST (empty if parsing
// failed).
type Result struct {
	Tokens      []Token
	Program     *Program
	Diagnostics *Diagnostics
	Unparsed    string
}

// Compile runs the full front end over src: scan, parse, resolve, unparse.
// Only a syntax error aborts the pipeline early, returning it as a Go error;
// every other kind of problem -- illegal characters, bad literals, unbound
// names, duplicate declarations -- is recorded in the returned Diagnostics
// and the pipeline keeps running so the caller sees every diagnostic in one
// pass, not just the first.
func Compile(src string) (*Result, error) {
	diags := NewDiagnostics()
	tokens := Lex(src, diags)

	prog, err := Parse(tokens, diags)
	if err != nil {
		return &Result{Tokens: tokens, Diagnostics: diags}, err
	}

	Resolve(prog, diags)
	unparsed := Unparse(prog)

	return &Result{
		Tokens:      tokens,
		Program:     prog,
		Diagnostics: diags,
		Unparsed:    unparsed,
	}, nil
}
