// Command cmm runs the C-- front end over a single source file: it scans,
// parses, resolves names, and writes the canonical symbol-annotated
// unparse of the program. Diagnostics go to stderr in the order they were
// raised; the exit code is nonzero if any diagnostic was fatal.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	flags "github.com/jessevdk/go-flags"

	"github.com/milicaandric/c---compiler/pkg/compiler"
	"github.com/milicaandric/c---compiler/pkg/utils"
)

var options struct {
	Source     string `short:"s" long:"source" required:"true" description:"C-- source file to compile"`
	Output     string `short:"o" long:"output" optional:"true" default:"" description:"output file for the unparsed source (default: <source>.unparsed.cmm)"`
	DumpTokens bool   `long:"dump-tokens" description:"print the scanned token stream"`
	DumpAST    bool   `long:"dump-ast" description:"print the parsed and resolved syntax tree"`
}

func main() {
	args, err := flags.Parse(&options)
	if err != nil {
		os.Exit(1)
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", args[0])
		os.Exit(1)
	}

	fullPath, parentDir, err := utils.GetPathInfo(options.Source)
	check(err)

	data, err := os.ReadFile(fullPath)
	check(err)

	if options.Output == "" {
		base := strings.TrimSuffix(filepath.Base(fullPath), filepath.Ext(fullPath))
		options.Output = filepath.Join(parentDir, base+".unparsed.cmm")
	}

	result, compileErr := compiler.Compile(string(data))

	if options.DumpTokens {
		fmt.Println("Tokens")
		for _, tok := range result.Tokens {
			fmt.Println(" ", tok)
		}
		fmt.Println()
	}

	if options.DumpAST && result.Program != nil {
		fmt.Println("AST")
		repr.Println(result.Program)
		fmt.Println()
	}

	result.Diagnostics.WriteTo(os.Stderr)

	if compileErr != nil {
		os.Exit(1)
	}

	check(os.WriteFile(options.Output, []byte(result.Unparsed), 0o644))

	if result.Diagnostics.ErrorOccurred() {
		os.Exit(1)
	}
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
