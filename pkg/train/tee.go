package train

import (
	"io"
)

// teeWriter mirrors writes to a live stream while keeping a copy for error
// reporting. io.MultiWriter would abort the stream on the first buffer
// error; here the capture side is best-effort.
type teeWriter struct {
	stream  io.Writer
	capture io.Writer
}

func newTeeWriter(stream, capture io.Writer) *teeWriter {
	return &teeWriter{stream: stream, capture: capture}
}

func (w *teeWriter) Write(p []byte) (int, error) {
	w.capture.Write(p)
	return w.stream.Write(p)
}
