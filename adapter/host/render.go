package host

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/trickstertwo/hostlog"
)

// ErrEmbeddedTerminator is wrapped by every FormatError.
var ErrEmbeddedTerminator = errors.New("host: rendered message contains a NUL byte")

// FormatError reports a record whose rendered text cannot cross the
// boundary as a C string.
type FormatError struct {
	Level  hostlog.Level
	Offset int // index of the first NUL in the rendered text
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("host: %s record has a NUL byte at offset %d", e.Level, e.Offset)
}

func (e *FormatError) Unwrap() error { return ErrEmbeddedTerminator }

// Message is an owned, NUL-terminated rendering of a Record.
// The text never contains a NUL and always ends with exactly one '\n'
// appended by the renderer. A Message belongs to the call that rendered it
// until Release.
type Message struct {
	b []byte // text, '\n', NUL
}

// Bytes returns the text including the trailing '\n', without the NUL.
// The slice is invalid after Release.
func (m *Message) Bytes() []byte { return m.b[:len(m.b)-1] }

// String returns a copy of Bytes.
func (m *Message) String() string { return string(m.Bytes()) }

// terminated is what crosses the boundary.
func (m *Message) terminated() []byte { return m.b }

// Release returns the buffer to the pool. m must not be used afterwards;
// releasing it again is a no-op.
func (m *Message) Release() {
	b := m.b
	if b == nil {
		return
	}
	m.b = nil
	if cap(b) > maxPooledCap {
		return
	}
	msgPool.Put(&Message{b: b[:0]})
}

const maxPooledCap = 64 * 1024

var msgPool = sync.Pool{New: func() any { return &Message{b: make([]byte, 0, 256)} }}

func getMessage() *Message {
	m := msgPool.Get().(*Message)
	m.b = m.b[:0]
	return m
}

func appendText(dst []byte, rec hostlog.Record) []byte {
	if rec.Formatted() {
		return fmt.Appendf(dst, rec.Format, rec.Args...)
	}
	return append(dst, rec.Message...)
}

// Render produces the boundary-safe form of rec. It fails with a
// *FormatError when the rendered text contains a NUL byte.
func Render(rec hostlog.Record) (*Message, error) {
	m := getMessage()
	m.b = appendText(m.b, rec)
	if i := bytes.IndexByte(m.b, 0); i >= 0 {
		m.Release()
		return nil, &FormatError{Level: rec.Level, Offset: i}
	}
	m.b = append(m.b, '\n', 0)
	return m, nil
}

// RenderTruncated renders rec and cuts the text at its first NUL byte.
// It never fails.
func RenderTruncated(rec hostlog.Record) *Message {
	m := getMessage()
	m.b = appendText(m.b, rec)
	if i := bytes.IndexByte(m.b, 0); i >= 0 {
		m.b = m.b[:i]
	}
	m.b = append(m.b, '\n', 0)
	return m
}
