/*
File    : psl/replshell/replshell.go

Package replshell implements the interactive Read-Eval-Print Loop for
PSL, grounded on go-mix/repl/repl.go's Repl struct and Start loop
(banner print, readline-backed history, panic recovery around each
line's evaluation) adapted to this module's persistent env.Environment
plus eval.Evaluator session instead of go-mix's parser-owned evaluator
state.
*/
package replshell

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/pslstudio/psl/builtin"
	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/eval"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const separator = "----------------------------------------------------------------"

// Shell is one interactive PSL session.
type Shell struct {
	Banner  string
	Version string
	Prompt  string

	evaluator *eval.Evaluator
	scope     *env.Environment
}

// New creates a Shell with its own persistent root environment and
// evaluator, configured with the given safety bounds (normally loaded
// from .pslrc.yaml, see cmd/psl/config.go).
func New(banner, version, prompt string, maxRecursionDepth, maxLoopIterations int) *Shell {
	ev := eval.New("")
	ev.MaxRecursionDepth = maxRecursionDepth
	ev.MaxLoopIterations = maxLoopIterations
	return &Shell{
		Banner:    banner,
		Version:   version,
		Prompt:    prompt,
		evaluator: ev,
		scope:     env.New(),
	}
}

func (s *Shell) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", separator)
	greenColor.Fprintf(w, "%s\n", s.Banner)
	blueColor.Fprintf(w, "%s\n", separator)
	yellowColor.Fprintf(w, "Version: %s\n", s.Version)
	blueColor.Fprintf(w, "%s\n", separator)
	cyanColor.Fprintln(w, "Welcome to psl! Type a line and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", separator)
}

// Start runs the loop until EOF, an explicit .exit, or readline itself
// fails to initialize.
func (s *Shell) Start(reader io.Reader, writer io.Writer) {
	s.printBanner(writer)

	rl, err := readline.New(s.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[READLINE ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	s.evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Goodbye!\n"))
			return
		}
		rl.SaveHistory(line)
		s.evalLine(writer, line)
	}
}

func (s *Shell) evalLine(writer io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", r)
		}
	}()

	_, err := s.evaluator.EvalLine(line, s.scope)
	for _, out := range s.scope.Output {
		writer.Write([]byte(out))
	}
	s.scope.Output = nil
	if err != nil {
		if exit, ok := err.(*builtin.ExitSignal); ok {
			os.Exit(exit.Code)
		}
		redColor.Fprintf(writer, "%v\n", err)
	}
}
