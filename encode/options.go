package encode

import (
	"io"
	"log/slog"
)

const panicNilLogger = "encode: WithLogger: logger must not be nil"

// Option configures an Encoder.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithLogger sets the structured logger. The default discards everything.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}
