package mubuf

import (
	"io"
	"os"

	"github.com/scigolib/musvg/internal/muerr"
)

const defaultWindow = 4096

// readerFileSync refills the free region [writeMarker:len(data)) from the
// backing file, tolerating short reads, and advances writeMarker by the
// number of bytes actually read.
func readerFileSync(b *Buffer) error {
	for b.writeMarker < len(b.data) {
		n, err := b.file.Read(b.data[b.writeMarker:])
		b.writeMarker += n
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return muerr.Wrap("reader sync", err)
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}

// writerFileSync drains the pending region [readMarker:writeMarker) to the
// backing file, tolerating short writes, and advances readMarker by the
// number of bytes actually written.
func writerFileSync(b *Buffer) error {
	for b.readMarker < b.writeMarker {
		n, err := b.file.Write(b.data[b.readMarker:b.writeMarker])
		b.readMarker += n
		if err != nil {
			return muerr.Wrap("writer sync", err)
		}
		if n == 0 {
			return muerr.Wrap("writer sync", io.ErrShortWrite)
		}
	}
	return nil
}

// NewReaderFD wraps an already-open file the caller retains ownership of;
// Close will not close it. windowSize sizes the read-ahead window.
func NewReaderFD(f *os.File, windowSize int) *Buffer {
	if windowSize <= 0 {
		windowSize = defaultWindow
	}
	return &Buffer{
		data:       make([]byte, windowSize),
		readCheck:  readerSyncCheck,
		writeCheck: fixedWriteCheck,
		sync:       readerFileSync,
		file:       f,
		ownsFD:     false,
	}
}

// NewWriterFD wraps an already-open file the caller retains ownership of;
// Close flushes pending bytes but does not close the file.
func NewWriterFD(f *os.File, windowSize int) *Buffer {
	if windowSize <= 0 {
		windowSize = defaultWindow
	}
	return &Buffer{
		data:       make([]byte, windowSize),
		readCheck:  fixedReadCheck,
		writeCheck: writerSyncCheck,
		sync:       writerFileSync,
		file:       f,
		ownsFD:     false,
	}
}

// NewReaderFile opens path for reading; the returned Buffer owns the
// descriptor and closes it on Close.
func NewReaderFile(path string, windowSize int) (*Buffer, error) {
	//nolint:gosec // G304: caller-supplied path is intentional for this library
	f, err := os.Open(path)
	if err != nil {
		return nil, muerr.Wrap("reader file open", err)
	}
	b := NewReaderFD(f, windowSize)
	b.ownsFD = true
	return b, nil
}

// NewWriterFile creates/truncates path for writing; the returned Buffer
// owns the descriptor and closes it (after a final flush) on Close.
func NewWriterFile(path string, windowSize int) (*Buffer, error) {
	//nolint:gosec // G304: caller-supplied path is intentional for this library
	f, err := os.Create(path)
	if err != nil {
		return nil, muerr.Wrap("writer file open", err)
	}
	b := NewWriterFD(f, windowSize)
	b.ownsFD = true
	return b, nil
}

// NewFixed allocates an owned, non-growing memory buffer of the given
// size, readable and writable through the same window.
func NewFixed(size int) *Buffer {
	return &Buffer{
		data:       make([]byte, size),
		readCheck:  fixedReadCheck,
		writeCheck: fixedWriteCheck,
	}
}

// NewResizable allocates an owned buffer that grows to the next power of
// two on write overflow instead of failing.
func NewResizable(initial int) *Buffer {
	if initial <= 0 {
		initial = 16
	}
	return &Buffer{
		data:       make([]byte, initial),
		readCheck:  fixedReadCheck,
		writeCheck: resizableWriteCheck,
	}
}

// NewBorrowed wraps caller-owned memory. The buffer never reallocates it;
// write_marker starts at len(data) so the whole region is immediately
// readable (useful for parsing an existing byte slice), while writes are
// rejected once exhausted, mirroring "retain" ownership semantics.
func NewBorrowed(data []byte) *Buffer {
	return &Buffer{
		data:        data,
		writeMarker: len(data),
		readCheck:   fixedReadCheck,
		writeCheck:  fixedWriteCheck,
		retain:      true,
	}
}

// NewBorrowedForWrite wraps caller-owned memory intended as a fresh write
// target (write_marker starts at 0).
func NewBorrowedForWrite(data []byte) *Buffer {
	return &Buffer{
		data:       data,
		readCheck:  fixedReadCheck,
		writeCheck: fixedWriteCheck,
		retain:     true,
	}
}
