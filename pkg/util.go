package pkg

import (
	"strings"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// TrimmedBytesToString is BytesToString with surrounding whitespace removed,
// handy for command output.
func TrimmedBytesToString(buf []byte) string {
	return strings.TrimSpace(BytesToString(buf))
}
