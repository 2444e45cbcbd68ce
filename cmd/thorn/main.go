// Command thorn is the external CLI driver for the Thorn language core:
// a REPL when given no arguments, or a file runner when given a path.
// It is deliberately thin — argument parsing, source loading, and exit
// codes — with all compiler/VM/GC logic living in package vm.
package main

import (
	"bufio"
	"fmt"
	"os"

	"thornvm/vm"
)

const (
	exitOK        = 0
	exitDataErr   = 65 // EX_DATAERR: compile error
	exitSoftware  = 70 // EX_SOFTWARE: runtime error
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch len(args) {
	case 0:
		return repl()
	case 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: thorn [path]")
		return exitSoftware
	}
}

func repl() int {
	machine := vm.New()
	defer machine.Free()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		machine.Interpret(line)
		fmt.Print("> ")
	}
	fmt.Println()
	return exitOK
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file \"%s\".\n", path)
		return exitSoftware
	}

	machine := vm.New()
	defer machine.Free()

	switch machine.Interpret(string(source)) {
	case vm.InterpretCompileError:
		return exitDataErr
	case vm.InterpretRuntimeError:
		return exitSoftware
	default:
		return exitOK
	}
}
