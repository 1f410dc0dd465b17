package form

import "strings"

// Buffer is the explicit output capture of a form session. Begin acquires
// one, End drains and releases it. Everything written between the two calls
// ends up inside the rendered form tag, in write order.
type Buffer struct {
	builder strings.Builder
}

// WriteString appends markup to the capture.
func (b *Buffer) WriteString(s string) {
	b.builder.WriteString(s)
}

// Write implements io.Writer so callers can fmt.Fprintf into the capture.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.builder.Write(p)
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return b.builder.Len()
}

// String returns the buffered markup without draining it.
func (b *Buffer) String() string {
	return b.builder.String()
}
