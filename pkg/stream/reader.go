// Package stream drains a data source into an owning bytebuf.Buffer, one
// fixed-size chunk at a time. Each filled chunk prefix is presented as a
// bufref.View[byte] over the reused chunk buffer, so nothing is copied until
// the view is appended.
package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/rawbytedev/bufref"
	"github.com/rawbytedev/bufref/pkg/bytebuf"
	"github.com/sirupsen/logrus"
)

var ErrTooLarge = errors.New("stream: source exceeds MaxSize")

// Source is anything that fills p and reports how many bytes it wrote.
// A zero count or io.EOF ends the stream.
type Source interface {
	Read(p []byte) (int, error)
}

// SourceFunc adapts a read function that returns 0 at end of data.
type SourceFunc func(p []byte) int

func (f SourceFunc) Read(p []byte) (int, error) {
	if n := f(p); n > 0 {
		return n, nil
	}
	return 0, io.EOF
}

type Reader struct {
	src   Source
	opts  Options
	log   *logrus.Entry
	chunk []byte
}

func NewReader(src Source, opts Options) *Reader {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	log := opts.Logger
	if log == nil {
		log = logrus.WithField("component", "stream")
	}
	return &Reader{src: src, opts: opts, log: log}
}

// Each calls fn with a view of every chunk read from the source. The view
// aliases the internal chunk buffer and is only valid until fn returns.
func (r *Reader) Each(fn func(bufref.View[byte]) error) error {
	if r.chunk == nil {
		r.chunk = make([]byte, r.opts.ChunkSize)
	}
	var total int64
	chunks := 0
	for {
		n, err := r.src.Read(r.chunk)
		if n > 0 {
			over := r.opts.MaxSize > 0 && total+int64(n) > r.opts.MaxSize
			if over {
				n = int(r.opts.MaxSize - total)
			}
			if n > 0 {
				if ferr := fn(bufref.FromRange(r.chunk, 0, n)); ferr != nil {
					return ferr
				}
				total += int64(n)
				chunks++
				r.log.WithFields(logrus.Fields{"chunk": chunks, "bytes": n, "total": total}).Debug("chunk read")
			}
			if over {
				r.log.WithField("max_size", r.opts.MaxSize).Warn("source truncated")
				return ErrTooLarge
			}
		}
		if err == io.EOF || (err == nil && n == 0) {
			r.log.WithFields(logrus.Fields{"chunks": chunks, "total": total}).Debug("end of data")
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream: read after %d bytes: %w", total, err)
		}
	}
}

// ReadToEnd drains the source into a new buffer. On error the buffer holds
// everything read before the failure.
func (r *Reader) ReadToEnd() (*bytebuf.Buffer, error) {
	out := bytebuf.New(r.opts.ChunkSize)
	err := r.Each(func(v bufref.View[byte]) error {
		out.AppendView(v)
		return nil
	})
	return out, err
}

func (r *Reader) ReadStringToEnd() (string, error) {
	out, err := r.ReadToEnd()
	return out.String(), err
}
