/*
File    : psl/cmd/psl/main.go

Package main is the PSL interpreter's entry point, grounded on
go-mix/main/main.go's file-mode/REPL-mode/--help/--version dispatch,
trimmed of go-mix's TCP server mode (no networking surface belongs to
this interpreter, per SPEC_FULL.md's DOMAIN STACK).

Usage:

	psl run file.psl [--debug]
	psl repl
	psl --help
	psl --version
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pslstudio/psl/builtin"
	"github.com/pslstudio/psl/eval"
	"github.com/pslstudio/psl/host"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/replshell"
)

const version = "v0.1.0"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		runRepl()
		return
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "repl":
		runRepl()
	case "run":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "usage: psl run file.psl [--debug]")
			os.Exit(1)
		}
		debug := len(os.Args) > 3 && os.Args[3] == "--debug"
		runFile(os.Args[2], debug)
	default:
		// `psl file.psl` is accepted as shorthand for `psl run file.psl`.
		runFile(os.Args[1], len(os.Args) > 2 && os.Args[2] == "--debug")
	}
}

func showHelp() {
	cyanColor.Println("psl - a pseudocode interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  psl run file.psl [--debug]   Execute a .psl file")
	fmt.Println("  psl repl                     Start an interactive session")
	fmt.Println("  psl --help                   Show this message")
	fmt.Println("  psl --version                Show version information")
}

func showVersion() {
	fmt.Printf("psl %s\n", version)
}

func runFile(path string, debug bool) {
	cfg, err := LoadConfig()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	if debug {
		prog, err := parser.Parse(string(src))
		if err != nil {
			redColor.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		printAST(os.Stdout, prog, 0)
	}

	ev := eval.New(string(src))
	ev.MaxRecursionDepth = cfg.RecursionDepth
	ev.MaxLoopIterations = cfg.MaxLoopIterations
	ev.SetWriter(os.Stdout)
	ev.SetReader(os.Stdin)
	ev.Importer = &host.FileImporter{BaseDir: filepath.Dir(path)}

	if err := ev.Run(string(src)); err != nil {
		if exit, ok := err.(*builtin.ExitSignal); ok {
			os.Exit(exit.Code)
		}
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runRepl() {
	cfg, err := LoadConfig()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}
	shell := replshell.New(cfg.Banner, version, cfg.Prompt, cfg.RecursionDepth, cfg.MaxLoopIterations)
	shell.Start(os.Stdin, os.Stdout)
}
