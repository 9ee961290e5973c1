/*
File    : psl/cmd/psl/printer.go

AST dump for `--debug`, grounded on go-mix/main/print_visitor.go's
indentation style (one level per nesting, node name then children) but
walking psl/parser's type-switch Node tree instead of go-mix's visitor
interface.
*/
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pslstudio/psl/parser"
)

func printAST(w io.Writer, node parser.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	switch n := node.(type) {
	case *parser.Program:
		fmt.Fprintf(w, "%sProgram\n", pad)
		for _, s := range n.Statements {
			printAST(w, s, indent+1)
		}
	case *parser.Block:
		fmt.Fprintf(w, "%sBlock\n", pad)
		for _, s := range n.Statements {
			printAST(w, s, indent+1)
		}
	case *parser.IfStmt:
		fmt.Fprintf(w, "%sIf\n", pad)
		printAST(w, n.Condition, indent+1)
		printAST(w, n.Then, indent+1)
		if n.Else != nil {
			printAST(w, n.Else, indent+1)
		}
	case *parser.RepeatTimes:
		fmt.Fprintf(w, "%sRepeatTimes\n", pad)
		printAST(w, n.Count, indent+1)
		printAST(w, n.Body, indent+1)
	case *parser.RepeatUntil:
		fmt.Fprintf(w, "%sRepeatUntil\n", pad)
		printAST(w, n.Condition, indent+1)
		printAST(w, n.Body, indent+1)
	case *parser.ForEach:
		fmt.Fprintf(w, "%sForEach(%s)\n", pad, n.VarName)
		printAST(w, n.Seq, indent+1)
		printAST(w, n.Body, indent+1)
	case *parser.ProcDecl:
		fmt.Fprintf(w, "%sProcDecl(%s)\n", pad, n.Name)
		printAST(w, n.Body, indent+1)
	case *parser.Assignment:
		fmt.Fprintf(w, "%sAssignment\n", pad)
		printAST(w, n.Target, indent+1)
		printAST(w, n.Value, indent+1)
	case *parser.BinaryExpr:
		fmt.Fprintf(w, "%s%s\n", pad, n.String())
		printAST(w, n.Left, indent+1)
		printAST(w, n.Right, indent+1)
	case *parser.Call:
		fmt.Fprintf(w, "%s%s\n", pad, n.String())
		for _, a := range n.Args {
			printAST(w, a, indent+1)
		}
	default:
		fmt.Fprintf(w, "%s%s\n", pad, node.String())
	}
}
