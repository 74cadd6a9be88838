package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/registry"
	"github.com/ouankou/roup"
)

func getDirective(h registry.Handle) (*ir.Directive, Status) {
	obj, ok := registry.Default.Get(h)
	if !ok {
		return nil, StatusInvalidHandle
	}
	d, ok := obj.(*ir.Directive)
	if !ok {
		return nil, StatusInvalidHandle
	}
	return d, StatusSuccess
}

// roup_parse is the convenience parse mode of spec.md §4.G: one input
// line in, one directive handle out.
//
//export roup_parse
func roup_parse(text *C.char, length C.size_t, language C.int32_t, out *C.uint64_t) C.int32_t {
	if text == nil || out == nil {
		return C.int32_t(StatusNullPointer)
	}
	s := C.GoStringN(text, C.int(length))
	d, err := roup.Parse(s, lang.Language(language))
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	*out = C.uint64_t(registry.Default.Insert(registry.KindDirective, d))
	return C.int32_t(StatusSuccess)
}

// roup_parse_all is the aggregate parse mode: it scans text for every
// directive it contains and returns a result handle take_last_result
// drains (spec.md §4.G). Lines without a recognizable sentinel are
// skipped, matching roup.ParseAll; lines whose sentinel fails to parse
// are simply omitted from the aggregate rather than failing the whole
// call, since the C ABI has no per-line side channel to report partial
// failure through.
//
//export roup_parse_all
func roup_parse_all(text *C.char, length C.size_t, language C.int32_t, out *C.uint64_t) C.int32_t {
	if text == nil || out == nil {
		return C.int32_t(StatusNullPointer)
	}
	s := C.GoStringN(text, C.int(length))
	ds, _ := roup.ParseAll(s, lang.Language(language))

	ok := make([]*ir.Directive, 0, len(ds))
	for _, d := range ds {
		if d != nil {
			ok = append(ok, d)
		}
	}
	*out = C.uint64_t(registry.Default.Insert(registry.KindParseResult, &registry.ParseResult{Directives: ok}))
	return C.int32_t(StatusSuccess)
}

// roup_take_last_result drains a parse-result aggregate into a
// caller-allocated array of directive handles, transferring ownership of
// each directive to the caller (spec.md §4.G). A second drain of the same
// handle reports EmptyResult.
//
//export roup_take_last_result
func roup_take_last_result(handle C.uint64_t, outArray *C.uint64_t, capacity C.size_t, outCount *C.size_t) C.int32_t {
	obj, found := registry.Default.Get(registry.Handle(handle))
	if !found {
		return C.int32_t(StatusInvalidHandle)
	}
	pr, ok := obj.(*registry.ParseResult)
	if !ok {
		return C.int32_t(StatusInvalidHandle)
	}
	if outArray == nil || outCount == nil {
		return C.int32_t(StatusNullPointer)
	}
	ds := pr.TakeAll()
	if ds == nil {
		return C.int32_t(StatusEmptyResult)
	}
	if C.size_t(len(ds)) > capacity {
		return C.int32_t(StatusOutOfBounds)
	}
	slice := unsafe.Slice(outArray, int(capacity))
	for i, d := range ds {
		slice[i] = C.uint64_t(registry.Default.Insert(registry.KindDirective, d))
	}
	*outCount = C.size_t(len(ds))
	return C.int32_t(StatusSuccess)
}

// roup_free_result frees a drained-or-not parse-result aggregate;
// freeing it after a successful drain is a no-op on the directives
// themselves, which the caller now owns independently.
//
//export roup_free_result
func roup_free_result(handle C.uint64_t) C.int32_t {
	registry.Default.Remove(registry.Handle(handle))
	return C.int32_t(StatusSuccess)
}

//export roup_directive_kind
func roup_directive_kind(handle C.uint64_t, out *C.uint16_t) C.int32_t {
	d, status := getDirective(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.uint16_t(d.Kind)
	return C.int32_t(StatusSuccess)
}

//export roup_directive_clause_count
func roup_directive_clause_count(handle C.uint64_t, out *C.size_t) C.int32_t {
	d, status := getDirective(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.size_t(len(d.ClausesInOriginalOrder()))
	return C.int32_t(StatusSuccess)
}

//export roup_directive_language
func roup_directive_language(handle C.uint64_t, out *C.int32_t) C.int32_t {
	d, status := getDirective(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.int32_t(d.Language)
	return C.int32_t(StatusSuccess)
}

//export roup_directive_line
func roup_directive_line(handle C.uint64_t, out *C.uint32_t) C.int32_t {
	d, status := getDirective(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.uint32_t(d.Pos.Line)
	return C.int32_t(StatusSuccess)
}

//export roup_directive_column
func roup_directive_column(handle C.uint64_t, out *C.uint32_t) C.int32_t {
	d, status := getDirective(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.uint32_t(d.Pos.Column)
	return C.int32_t(StatusSuccess)
}

//export roup_directive_free
func roup_directive_free(handle C.uint64_t) C.int32_t {
	registry.Default.Remove(registry.Handle(handle))
	return C.int32_t(StatusSuccess)
}
