package main

/*
#include <stdint.h>
#include <string.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	"github.com/ouankou/roup/internal/registry"
)

// stringBuilder backs the string-builder entry-point family: a plain
// growable byte buffer a C caller pushes bytes into and later copies out,
// the shape needed to hand a canonical-render result back across the ABI
// boundary without Go ever allocating C memory itself.
type stringBuilder struct {
	buf []byte
}

func getStringBuilder(h registry.Handle) (*stringBuilder, Status) {
	obj, ok := registry.Default.Get(h)
	if !ok {
		return nil, StatusInvalidHandle
	}
	sb, ok := obj.(*stringBuilder)
	if !ok {
		return nil, StatusInvalidHandle
	}
	return sb, StatusSuccess
}

//export roup_string_new
func roup_string_new(out *C.uint64_t) C.int32_t {
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.uint64_t(registry.Default.Insert(registry.KindStringBuilder, &stringBuilder{}))
	return C.int32_t(StatusSuccess)
}

//export roup_string_push
func roup_string_push(handle C.uint64_t, data *C.char, length C.size_t) C.int32_t {
	sb, status := getStringBuilder(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if data == nil {
		return C.int32_t(StatusNullPointer)
	}
	b := C.GoBytes(unsafe.Pointer(data), C.int(length))
	if !utf8.Valid(b) {
		return C.int32_t(StatusInvalidUTF8)
	}
	sb.buf = append(sb.buf, b...)
	return C.int32_t(StatusSuccess)
}

//export roup_string_len
func roup_string_len(handle C.uint64_t, out *C.size_t) C.int32_t {
	sb, status := getStringBuilder(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.size_t(len(sb.buf))
	return C.int32_t(StatusSuccess)
}

//export roup_string_capacity
func roup_string_capacity(handle C.uint64_t, out *C.size_t) C.int32_t {
	sb, status := getStringBuilder(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if out == nil {
		return C.int32_t(StatusNullPointer)
	}
	*out = C.size_t(cap(sb.buf))
	return C.int32_t(StatusSuccess)
}

//export roup_string_copy_out
func roup_string_copy_out(handle C.uint64_t, dst *C.char, capacity C.size_t) C.int32_t {
	sb, status := getStringBuilder(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	if dst == nil {
		return C.int32_t(StatusNullPointer)
	}
	if C.size_t(len(sb.buf)) > capacity {
		return C.int32_t(StatusOutOfBounds)
	}
	if len(sb.buf) > 0 {
		C.memcpy(unsafe.Pointer(dst), unsafe.Pointer(&sb.buf[0]), C.size_t(len(sb.buf)))
	}
	return C.int32_t(StatusSuccess)
}

//export roup_string_clear
func roup_string_clear(handle C.uint64_t) C.int32_t {
	sb, status := getStringBuilder(registry.Handle(handle))
	if status != StatusSuccess {
		return C.int32_t(status)
	}
	sb.buf = sb.buf[:0]
	return C.int32_t(StatusSuccess)
}

//export roup_string_free
func roup_string_free(handle C.uint64_t) C.int32_t {
	registry.Default.Remove(registry.Handle(handle))
	return C.int32_t(StatusSuccess)
}
