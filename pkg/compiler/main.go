// Package compiler implements a front end for C--, a small C-like teaching
// language: a scanner, a recursive-descent parser, a scoped name resolver,
// and a canonical unparser that re-emits a program with every identifier
// annotated by the symbol the resolver bound to it.
//
// Pipeline: source text → Lex → Parse → Resolve → Unparse
package compiler
