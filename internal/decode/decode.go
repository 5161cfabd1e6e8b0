// Package decode turns a byte stream into a sequence of units: decoded code
// points (lone surrogates included) and single bytes that are not valid UTF-8.
// Malformed input never produces an error.
package decode

import (
	"context"
	"errors"
	"io"
	"iter"

	"github.com/five82/runetab/internal/charinfo"
)

const (
	// StreamChunkSize keeps latency low for interactive or endless input.
	StreamChunkSize = 4
	// BufferChunkSize is used when the whole input is read before output.
	BufferChunkSize = 4096

	maxEmptyReads = 100
)

// Decoder is a forward-only, single-pass decoder over a chunked reader.
type Decoder struct {
	r     io.Reader
	ctx   context.Context
	chunk []byte
	buf   []byte
	pos   int // start of undecoded bytes in buf
	eof   bool
	err   error
	read  int64
}

// New returns a decoder reading at most chunkSize bytes per call to r.Read.
func New(r io.Reader, chunkSize int) *Decoder {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &Decoder{
		r:     r,
		ctx:   context.Background(),
		chunk: make([]byte, chunkSize),
		buf:   make([]byte, 0, chunkSize+utfMax),
	}
}

// WithContext makes cancellation of ctx end the input at the next chunk
// boundary. Buffered bytes are still flushed.
func (d *Decoder) WithContext(ctx context.Context) *Decoder {
	if ctx != nil {
		d.ctx = ctx
	}
	return d
}

// Err returns the read error that ended the input, if it was not io.EOF.
func (d *Decoder) Err() error {
	return d.err
}

// BytesRead returns the number of bytes consumed from the reader.
func (d *Decoder) BytesRead() int64 {
	return d.read
}

// Next returns the next unit. It returns false once the input is exhausted
// and every buffered byte has been emitted.
func (d *Decoder) Next() (charinfo.Unit, bool) {
	for {
		if d.pos < len(d.buf) {
			r, n, st := decodeScalar(d.buf[d.pos:])
			switch {
			case st == statusOK:
				d.consume(n)
				return charinfo.Scalar(r, n), true
			case st == statusInvalid || d.eof:
				b := d.buf[d.pos]
				d.consume(1)
				return charinfo.InvalidByte(b), true
			}
			// Truncated sequence: wait for the rest of it.
		} else if d.eof {
			return charinfo.Unit{}, false
		}
		d.fill()
	}
}

// Units returns an iterator over the remaining units.
func (d *Decoder) Units() iter.Seq[charinfo.Unit] {
	return func(yield func(charinfo.Unit) bool) {
		for {
			u, ok := d.Next()
			if !ok || !yield(u) {
				return
			}
		}
	}
}

func (d *Decoder) fill() {
	if err := d.ctx.Err(); err != nil {
		d.eof = true
		return
	}
	d.compact()
	for empty := 0; ; empty++ {
		n, err := d.r.Read(d.chunk)
		if n > 0 {
			d.read += int64(n)
			d.buf = append(d.buf, d.chunk[:n]...)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				d.err = err
			}
			d.eof = true
			return
		}
		if n > 0 {
			return
		}
		if empty >= maxEmptyReads {
			d.err = io.ErrNoProgress
			d.eof = true
			return
		}
	}
}

func (d *Decoder) consume(n int) {
	d.pos += n
}

// compact moves the retained tail of a truncated sequence to the front.
func (d *Decoder) compact() {
	rest := copy(d.buf, d.buf[d.pos:])
	d.buf = d.buf[:rest]
	d.pos = 0
}
