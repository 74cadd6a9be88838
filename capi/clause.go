package main

/*
#include <stdint.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/registry"
)

func getClause(h registry.Handle) (*ir.Clause, Status) {
	obj, ok := registry.Default.Get(h)
	if !ok {
		return nil, StatusInvalidHandle
	}
	c, ok := obj.(*ir.Clause)
	if !ok {
		return nil, StatusInvalidHandle
	}
	return c, StatusSuccess
}

func getCursor(h registry.Handle) (*registry.ClauseCursor, Status) {
	obj, ok := registry.Default.Get(h)
	if !ok {
		return nil, StatusInvalidHandle
	}
	cur, ok := obj.(*registry.ClauseCursor)
	if !ok {
		return nil, StatusInvalidHandle
	}
	return cur, StatusSuccess
}

// copyOutText writes s into dst, the copy-out convention every text-valued
// entry point below shares with the string-builder family.
func copyOutText(s string, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	if dst == nil || outLen == nil {
		return C.int32_t(StatusNullPointer)
	}
	if C.size_t(len(s)) > capacity {
		return C.int32_t(StatusOutOfBounds)
	}
	*outLen = C.size_t(len(s))
	if len(s) > 0 {
		C.memcpy(unsafe.Pointer(dst), unsafe.Pointer(unsafe.StringData(s)), C.size_t(len(s)))
	}
	return C.int32_t(StatusSuccess)
}

// --- Clause cursor family -------------------------------------------------

//export roup_cursor_new
func roup_cursor_new(directive C.uint64_t, out *C.uint64_t) C.int32_t {
	d, status := getDirective(registry.Handle(directive))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	cur := registry.NewClauseCursor(d.ClausesInOriginalOrder())
	*out = C.uint64_t(registry.Default.InsertChild(registry.Handle(directive), registry.KindClauseCursor, cur))
	return C.int32_t(StatusSuccess)
}

//export roup_cursor_next
func roup_cursor_next(handle C.uint64_t, outDone *C.int32_t) C.int32_t {
	cur, status := getCursor(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if outDone == nil {
		return C.int32_t(StatusNullPointer)
	}
	_, ok := cur.Next()
	if ok {
		*outDone = 0
	} else {
		*outDone = 1
	}
	return C.int32_t(StatusSuccess)
}

//export roup_cursor_current
func roup_cursor_current(handle C.uint64_t, out *C.uint64_t) C.int32_t {
	cur, status := getCursor(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	c, ok := cur.Current()
	if !ok {
		return C.int32_t(StatusOutOfBounds)
	}
	*out = C.uint64_t(registry.Default.InsertChild(registry.Handle(handle), registry.KindClause, c))
	return C.int32_t(StatusSuccess)
}

//export roup_cursor_is_done
func roup_cursor_is_done(handle C.uint64_t, out *C.int32_t) C.int32_t {
	cur, status := getCursor(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	if cur.IsDone() {
		*out = 1
	} else {
		*out = 0
	}
	return C.int32_t(StatusSuccess)
}

//export roup_cursor_reset
func roup_cursor_reset(handle C.uint64_t) C.int32_t {
	cur, status := getCursor(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	cur.Reset()
	return C.int32_t(StatusSuccess)
}

//export roup_cursor_total
func roup_cursor_total(handle C.uint64_t, out *C.size_t) C.int32_t {
	cur, status := getCursor(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.size_t(cur.Total())
	return C.int32_t(StatusSuccess)
}

//export roup_cursor_position
func roup_cursor_position(handle C.uint64_t, out *C.int64_t) C.int32_t {
	cur, status := getCursor(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.int64_t(cur.Position())
	return C.int32_t(StatusSuccess)
}

//export roup_cursor_free
func roup_cursor_free(handle C.uint64_t) C.int32_t {
	registry.Default.Remove(registry.Handle(handle))
	return C.int32_t(StatusSuccess)
}

// --- Clause query family ---------------------------------------------------

//export roup_clause_at
func roup_clause_at(directive C.uint64_t, index C.size_t, out *C.uint64_t) C.int32_t {
	d, status := getDirective(registry.Handle(directive))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	clauses := d.ClausesInOriginalOrder()
	if int(index) >= len(clauses) {
		return C.int32_t(StatusOutOfBounds)
	}
	*out = C.uint64_t(registry.Default.InsertChild(registry.Handle(directive), registry.KindClause, clauses[index]))
	return C.int32_t(StatusSuccess)
}

//export roup_clause_type
func roup_clause_type(handle C.uint64_t, out *C.uint8_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.uint8_t(c.Variant)
	return C.int32_t(StatusSuccess)
}

//export roup_clause_kind
func roup_clause_kind(handle C.uint64_t, out *C.uint16_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.uint16_t(c.Kind)
	return C.int32_t(StatusSuccess)
}

//export roup_clause_num_threads
func roup_clause_num_threads(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	expr, err := c.AsExpression()
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	return copyOutText(expr, dst, capacity, outLen)
}

//export roup_clause_default
func roup_clause_default(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	return roup_clause_enum_tag(handle, dst, capacity, outLen)
}

//export roup_clause_schedule_kind
func roup_clause_schedule_kind(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	return roup_clause_enum_tag(handle, dst, capacity, outLen)
}

//export roup_clause_schedule_chunk
func roup_clause_schedule_chunk(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	_, arg, _, err := c.AsEnum()
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	return copyOutText(arg, dst, capacity, outLen)
}

// roup_clause_reduction_op reports the reduction's canonical operator
// name ("add", "multiply", "min", ... or "custom" for a user-defined
// identifier), the EnumArg half of the clause's AsEnum payload.
//
//export roup_clause_reduction_op
func roup_clause_reduction_op(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	_, op, _, err := c.AsEnum()
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	return copyOutText(op, dst, capacity, outLen)
}

// roup_clause_reduction_identifier reports the user-defined identifier
// text when roup_clause_reduction_op reports "custom", and an empty
// string for every built-in operator.
//
//export roup_clause_reduction_identifier
func roup_clause_reduction_identifier(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	tag, op, _, err := c.AsEnum()
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	identifier := ""
	if op == "custom" {
		identifier = tag
	}
	return copyOutText(identifier, dst, capacity, outLen)
}

//export roup_clause_enum_tag
func roup_clause_enum_tag(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	tag, _, _, err := c.AsEnum()
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	return copyOutText(tag, dst, capacity, outLen)
}

//export roup_clause_item_count
func roup_clause_item_count(handle C.uint64_t, out *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	items, _, err := c.AsList()
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.size_t(len(items))
	return C.int32_t(StatusSuccess)
}

//export roup_clause_item_at
func roup_clause_item_at(handle C.uint64_t, index C.size_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	items, _, err := c.AsList()
	if err != nil {
		return C.int32_t(statusFromErr(err))
	}
	if int(index) >= len(items) {
		return C.int32_t(StatusOutOfBounds)
	}
	return copyOutText(items[index], dst, capacity, outLen)
}

//export roup_clause_is_bare
func roup_clause_is_bare(handle C.uint64_t, out *C.int32_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	if c.Variant == ir.Bare {
		*out = 1
	} else {
		*out = 0
	}
	return C.int32_t(StatusSuccess)
}

//export roup_clause_name
func roup_clause_name(handle C.uint64_t, dst *C.char, capacity C.size_t, outLen *C.size_t) C.int32_t {
	c, status := getClause(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	return copyOutText(c.Kind.String(), dst, capacity, outLen)
}

//export roup_clause_free
func roup_clause_free(handle C.uint64_t) C.int32_t {
	registry.Default.Remove(registry.Handle(handle))
	return C.int32_t(StatusSuccess)
}
