package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is restored by handleCrash before the trace is printed
var crashScreen tcell.Screen

// handleCrash restores the terminal, prints the panic with its stack trace and exits
func handleCrash(r any) {
	if r == nil {
		return
	}
	if crashScreen != nil {
		crashScreen.Fini()
	}

	stack := debug.Stack()
	log.Printf("crash: %v\n%s", r, stack)
	fmt.Fprintf(os.Stderr, "\n\x1b[31mFOV-SANDBOX CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	os.Exit(1)
}

// goSafe runs fn in a new goroutine that restores the terminal if fn panics
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
