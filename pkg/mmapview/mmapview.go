//go:build unix

// Package mmapview maps a file read-only and exposes its contents as a
// bufref.View[byte]. The view is valid until Close.
package mmapview

import (
	"errors"
	"fmt"
	"os"

	"github.com/rawbytedev/bufref"
	"golang.org/x/sys/unix"
)

var (
	ErrClosed  = errors.New("mmapview: file is closed")
	ErrTooBig  = errors.New("mmapview: file does not fit in address space")
	ErrNotFile = errors.New("mmapview: not a regular file")
)

type Mapping struct {
	path   string
	data   []byte
	closed bool
}

// Open maps path into memory. Empty files are not mapped.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmapview: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mmapview: stat %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFile)
	}
	size := st.Size()
	if size == 0 {
		return &Mapping{path: path}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("%s: %w", path, ErrTooBig)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmapview: mmap %s: %w", path, err)
	}
	return &Mapping{path: path, data: data}, nil
}

// View returns a view of the whole mapping. It panics after Close.
func (m *Mapping) View() bufref.View[byte] {
	if m.closed {
		panic(ErrClosed)
	}
	return bufref.FromSlice(m.data)
}

func (m *Mapping) Len() int { return len(m.data) }

func (m *Mapping) Path() string { return m.path }

// Close unmaps the file. Views obtained earlier must not be used afterwards.
func (m *Mapping) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("mmapview: munmap %s: %w", m.path, err)
	}
	return nil
}
