// Package writer provides the growable, append-only byte buffer the trie
// and aff serializers write into.
//
// Strategy:
//   - End-of-buffer allocation: every reservation occurs at the current
//     length, there is no free space reuse and none is needed — a build is
//     a single forward pass over a bounded input.
//   - Back-patching: Reserve carves out a zero-filled window whose value
//     is not yet known (a child offset, a header field); the caller fills
//     it in later with PatchUint16LE/PatchUint32LE/PatchAt once the value
//     is known.
//
// Thread-safety: not thread-safe. Each Build call owns a private Buffer.
package writer

import (
	"encoding/binary"
	"fmt"
)

// Buffer is a growable, append-only byte sequence with support for
// reserving a fixed-size window now and writing its contents once known.
type Buffer struct {
	data []byte
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{data: make([]byte, 0, 256)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's internal storage and must not be retained across further writes.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	b.data = append(b.data, c)
}

// Write appends p in full.
func (b *Buffer) Write(p []byte) {
	b.data = append(b.data, p...)
}

// Reserve appends n zero bytes and returns the offset at which they start,
// for a value that will be back-patched in once it is known.
func (b *Buffer) Reserve(n int) int {
	offset := len(b.data)
	b.data = append(b.data, make([]byte, n)...)
	return offset
}

// PatchAt overwrites the n bytes starting at offset with p. offset+len(p)
// must not exceed the buffer's current length; PatchAt never grows the
// buffer, since back-patching always targets a window Reserve already
// carved out.
func (b *Buffer) PatchAt(offset int, p []byte) {
	if offset < 0 || offset+len(p) > len(b.data) {
		panic(fmt.Sprintf("writer: patch [%d:%d] out of range for buffer of length %d", offset, offset+len(p), len(b.data)))
	}
	copy(b.data[offset:offset+len(p)], p)
}

// PatchUint16LE back-patches a little-endian uint16 at offset.
func (b *Buffer) PatchUint16LE(offset int, v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.PatchAt(offset, tmp[:])
}

// PatchUint32LE back-patches a little-endian uint32 at offset.
func (b *Buffer) PatchUint32LE(offset int, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.PatchAt(offset, tmp[:])
}

// WriteUint32LE appends a little-endian uint32.
func (b *Buffer) WriteUint32LE(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}
