package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// handleCrash restores the terminal and prints the stack before exiting
func handleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\n\x1b[31mDRIFTLINE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// goSafe runs fn on a new goroutine that resets the terminal if it panics
func goSafe(screen tcell.Screen, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(screen, r)
			}
		}()
		fn()
	}()
}
