// Command capi (built with `go build -buildmode=c-shared`) is the stable
// handle-based C ABI (spec.md §4.G): every entry point below is declared
// `//export`ed and lives on top of internal/registry's process-wide
// handle table, the same one package compat's Go-native façades share.
//
// No example repository in this retrieval pack uses cgo; it is adopted
// here because a stable C ABI is spec.md's explicit requirement and the
// standard library's own cgo facility is the only way to export C
// symbols from a Go build — there is no third-party alternative to reach
// for.
package main

/*
#include <stdint.h>
*/
import "C"

func main() {}
