// Command lox is the entry point for the interpreter: run a script file,
// drop into an interactive session, or serve sessions over TCP.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/loxgo/errors"
	"github.com/akashmaji946/loxgo/interpreter"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/repl"
)

const (
	exitUsage   = 64
	exitSyntax  = 65
	exitRuntime = 70
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		repl.New(os.Stdout).Start(os.Stdin, os.Stdout)
	case args[0] == "--help" || args[0] == "-h":
		showHelp()
	case args[0] == "--version" || args[0] == "-v":
		showVersion()
	case args[0] == "server":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: lox server <port>")
			os.Exit(exitUsage)
		}
		startServer(args[1])
	case len(args) == 1:
		os.Exit(runFile(args[0]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsage)
	}
}

func showHelp() {
	fmt.Println(`loxgo — a tree-walking interpreter for Lox

Usage:
  lox                 start an interactive session
  lox <script>        run a script file
  lox server <port>   serve interactive sessions over TCP
  lox --help, -h      show this help text
  lox --version, -v   show the interpreter version`)
}

func showVersion() {
	fmt.Println("loxgo " + repl.Version)
}

// runFile reads and executes a single script, returning the process exit
// code: 64 if the file could not be read, 65 if the source failed to parse,
// 70 if it parsed but raised a runtime error, 0 otherwise.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	return run(string(src), os.Stdout)
}

func run(src string, out *os.File) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "[runtime error] %v\n", r)
			code = exitRuntime
		}
	}()

	reporter := errors.New(out)
	tokens := lexer.New(src, reporter).Scan()
	p := parser.New(tokens, reporter)
	statements := p.Parse()

	if reporter.HadError {
		return exitSyntax
	}

	interp := interpreter.New(out, reporter)
	if err := interp.Interpret(statements); err != nil {
		return exitRuntime
	}
	if reporter.HadRuntimeError {
		return exitRuntime
	}
	return 0
}

// startServer accepts TCP connections and gives each one its own
// independent REPL session and environment, running on its own goroutine.
// Sessions never share state: "no concurrency" within one interpreter run
// still holds, since each connection is its own single-threaded session.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	defer listener.Close()

	fmt.Printf("loxgo server listening on :%s\n", port)
	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		go handleConnection(conn)
	}
}

func handleConnection(conn net.Conn) {
	defer conn.Close()
	session := repl.New(conn)
	session.Start(conn, conn)
}
