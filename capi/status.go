package main

import "github.com/ouankou/roup/internal/diag"

// Status is the closed status-code surface every entry point returns
// (spec.md §4.G, §7): C.int on the wire, writing outputs through
// out-pointers only on StatusSuccess.
type Status int32

const (
	StatusSuccess Status = iota
	StatusInvalidHandle
	StatusInvalidUTF8
	StatusNullPointer
	StatusOutOfBounds
	StatusParseError
	StatusTypeMismatch
	StatusEmptyResult
)

// statusFromErr maps an internal/diag.Code onto the C ABI's status
// surface; every diag.Code has exactly one home here.
func statusFromErr(err error) Status {
	switch diag.CodeOf(err) {
	case diag.UnknownCode:
		return StatusSuccess
	case diag.InvalidEncoding:
		return StatusInvalidUTF8
	case diag.NoDirective, diag.LexError, diag.UnknownDirective, diag.MalformedClause:
		return StatusParseError
	case diag.TypeMismatch:
		return StatusTypeMismatch
	case diag.InvalidHandle:
		return StatusInvalidHandle
	case diag.OutOfBounds:
		return StatusOutOfBounds
	case diag.NullPointer:
		return StatusNullPointer
	case diag.EmptyResult:
		return StatusEmptyResult
	default:
		return StatusParseError
	}
}
