package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.Mutex
	resetHook func()
)

// SetResetHook registers the terminal restore routine run before a crash report
// Keeps core independent of the screen backend
func SetResetHook(fn func()) {
	resetMu.Lock()
	resetHook = fn
	resetMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	hook := resetHook
	resetMu.Unlock()

	// Restore terminal to sane state immediately
	if hook != nil {
		hook()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	// Raw mode may still be active on some terminals, so use \r\n
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
