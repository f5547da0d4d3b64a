// Command listdemo shows a reorderable list of sample levels in a GLFW
// window or a terminal, and renders theme screenshots.
//
// Usage:
//
//	go run ./cmd/listdemo tui
//	go run ./cmd/listdemo gl --theme Blue
//	go run ./cmd/listdemo shots --out doc/imgs
package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
