package wpinq

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger type used throughout this module,
// backed by the stumpy logiface implementation — the same pairing the
// rest of the source pack's logiface-backend packages exist to provide.
type Logger = *logiface.Logger[*stumpy.Event]

// NewLogger constructs a Logger writing newline-delimited JSON to w, in
// the style shown by stumpy's own example tests.
func NewLogger(w io.Writer) Logger {
	return stumpy.L.New(stumpy.L.WithStumpy(stumpy.WithWriter(w)))
}

// discardLogger is the default logger for every constructor accepting
// Option, imposing no I/O unless a caller supplies WithLogger.
var discardLogger = NewLogger(io.Discard)
