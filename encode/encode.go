package encode

import (
	"io"
	"log/slog"

	"github.com/simon-lentz/jsontree/internal/trace"
	"github.com/simon-lentz/jsontree/stream"
	"github.com/simon-lentz/jsontree/value"
)

// DefaultIndent is the per-level indent width used when [Indented] is
// given a non-positive width.
const DefaultIndent = 2

// Option configures an encode call.
type Option func(*config)

type config struct {
	indent int
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIndent selects indented output with the given per-level width
// for [From]. A width of 0 keeps compact output.
func WithIndent(width int) Option {
	return func(c *config) {
		if width < 0 {
			width = 0
		}
		c.indent = width
	}
}

// WithLogger attaches an optional logger. Entry points log operation
// spans at Debug level; a nil logger (the default) disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Compact writes v to w with no whitespace between tokens.
func Compact(v *value.Value, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	cfg.indent = 0
	return encodeValue(v, w, cfg, "jsontree.encode.compact")
}

// Indented writes v to w with one token group per line, indenting each
// nesting level by width spaces (DefaultIndent when width <= 0) and
// following every colon with one space.
func Indented(v *value.Value, w io.Writer, width int, opts ...Option) error {
	cfg := newConfig(opts)
	if width <= 0 {
		width = DefaultIndent
	}
	cfg.indent = width
	return encodeValue(v, w, cfg, "jsontree.encode.indented")
}

// String returns the compact encoding of v.
func String(v *value.Value, opts ...Option) (string, error) {
	b, err := Append(nil, v, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Append appends the compact encoding of v to dst and returns the
// extended buffer.
func Append(dst []byte, v *value.Value, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	cfg.indent = 0
	op := trace.Begin(cfg.logger, "jsontree.encode.append")
	e := &emitter{buf: dst}
	if err := render(stream.NewValueProducer(v), e); err != nil {
		op.End(err)
		return dst, err
	}
	op.End(nil)
	return e.buf, nil
}

// From drives producer until its stream ends and writes the rendered
// text to w. The stream is validated as it is consumed; an ill-formed
// sequence fails with [*stream.MalformedStreamError] before any write
// to w. Output is compact unless [WithIndent] is given.
func From(producer stream.Producer, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	op := trace.Begin(cfg.logger, "jsontree.encode.from")
	err := encodeStream(producer, w, cfg)
	op.End(err)
	return err
}

func encodeValue(v *value.Value, w io.Writer, cfg config, opName string) error {
	op := trace.Begin(cfg.logger, opName)
	err := encodeStream(stream.NewValueProducer(v), w, cfg)
	op.End(err)
	return err
}

func encodeStream(producer stream.Producer, w io.Writer, cfg config) error {
	e := &emitter{indent: cfg.indent}
	if err := render(producer, e); err != nil {
		return err
	}
	n, err := w.Write(e.buf)
	if err != nil {
		return err
	}
	if n < len(e.buf) {
		return io.ErrShortWrite
	}
	return nil
}

// render pulls every event from producer into e, validating
// well-formedness along the way.
func render(producer stream.Producer, e *emitter) error {
	var check stream.Checker
	for {
		ev, err := producer.Next()
		if err != nil {
			return err
		}
		if err := check.Check(ev); err != nil {
			return err
		}
		if ev.Kind == stream.EventNone {
			return nil
		}
		if err := e.emit(ev); err != nil {
			return err
		}
	}
}
