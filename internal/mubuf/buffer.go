// Package mubuf implements the buffered I/O layer every codec in this
// module is built on: a byte region with independent read/write cursors,
// pluggable overflow/underflow checks, and an optional sync callback that
// backs the window with a file.
package mubuf

import (
	"os"

	"github.com/scigolib/musvg/internal/ioutil"
	"github.com/scigolib/musvg/internal/muerr"
)

// CheckFn is consulted before a read or write of the given length; it may
// mutate the buffer (compacting, syncing, growing) before returning nil to
// allow the operation, or a non-nil error to reject it.
type CheckFn func(b *Buffer, length int) error

// SyncFn refills (reader) or drains (writer) the buffer against its
// backing file. It must tolerate short reads/writes from the OS.
type SyncFn func(b *Buffer) error

// Buffer is the core byte store described in spec.md §3/§4.1.
type Buffer struct {
	data        []byte
	readMarker  int
	writeMarker int

	readCheck  CheckFn
	writeCheck CheckFn
	sync       SyncFn

	file   *os.File
	ownsFD bool
	retain bool // true: data is caller-owned, buffer must not free/replace it
}

// ReadMarker returns the current read cursor.
func (b *Buffer) ReadMarker() int { return b.readMarker }

// WriteMarker returns the current write cursor.
func (b *Buffer) WriteMarker() int { return b.writeMarker }

// Size returns the capacity of the underlying region.
func (b *Buffer) Size() int { return len(b.data) }

// Unread returns the number of unread bytes pending between the markers.
func (b *Buffer) Unread() int { return b.writeMarker - b.readMarker }

// Bytes exposes the unread region [readMarker:writeMarker). The caller
// must not retain it past the next mutating call.
func (b *Buffer) Bytes() []byte { return b.data[b.readMarker:b.writeMarker] }

// Reset rewinds both cursors to zero without releasing the backing array.
func (b *Buffer) Reset() {
	b.readMarker = 0
	b.writeMarker = 0
}

// compact moves the unread region down to offset 0.
func (b *Buffer) compact() {
	if b.readMarker == 0 {
		return
	}
	n := copy(b.data, b.data[b.readMarker:b.writeMarker])
	b.writeMarker = n
	b.readMarker = 0
}

// Close flushes any pending writer bytes through sync once, closes the
// backing file if the buffer owns it, and (conceptually) releases data
// unless retain is set. Go's GC makes the release a no-op, but retain is
// still honored by never replacing a retained slice's backing array.
func (b *Buffer) Close() error {
	var err error
	if b.file != nil && b.sync != nil && b.writeMarker > b.readMarker {
		err = b.sync(b)
	}
	if b.ownsFD && b.file != nil {
		if cerr := b.file.Close(); err == nil {
			err = cerr
		}
		b.file = nil
	}
	return muerr.Wrap("buffer close", err)
}

// growResizable resizes data to the next power of two >= required,
// zero-filling the new tail, as spec.md §4.1/§9 requires.
func (b *Buffer) growResizable(required int) {
	newSize := int(ioutil.NextPow2(uint64(required)))
	if newSize <= len(b.data) {
		return
	}
	grown := make([]byte, newSize)
	copy(grown, b.data)
	b.data = grown
}
