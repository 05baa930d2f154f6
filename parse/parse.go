package parse

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/simon-lentz/jsontree/internal/trace"
	"github.com/simon-lentz/jsontree/location"
	"github.com/simon-lentz/jsontree/stream"
	"github.com/simon-lentz/jsontree/value"
)

// DefaultMaxDepth is the container nesting limit used when
// [WithMaxDepth] is not given.
const DefaultMaxDepth = 128

// Option configures a parse call.
type Option func(*config)

type config struct {
	maxDepth   int
	strictKeys bool
	logger     *slog.Logger
	source     location.SourceID
}

func newConfig(opts []Option) config {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth sets the container nesting limit. Input nesting deeper
// than n fails with [ExceededDepth]. Values below 1 restore the
// default.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		c.maxDepth = n
	}
}

// WithStrictKeys configures duplicate object key handling. By default
// duplicate keys are accepted and retained in source order; with strict
// set, a repeated key fails the parse with [DuplicateKey].
func WithStrictKeys(strict bool) Option {
	return func(c *config) {
		c.strictKeys = strict
	}
}

// WithLogger attaches an optional logger. Entry points log operation
// spans at Debug level; a nil logger (the default) disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Bytes parses a complete JSON document from data and returns the
// value tree, or a [*ParseError].
func Bytes(data []byte, opts ...Option) (*value.Value, error) {
	cfg := newConfig(opts)
	op := trace.Begin(cfg.logger, "jsontree.parse.bytes", slog.Int("size", len(data)))
	v, err := run(data, cfg)
	op.End(err)
	return v, err
}

// String parses a complete JSON document from s. See [Bytes].
func String(s string, opts ...Option) (*value.Value, error) {
	return Bytes([]byte(s), opts...)
}

// Reader drains r to EOF and parses the content as one document.
// Read failures are surfaced verbatim, wrapped with context.
func Reader(r io.Reader, opts ...Option) (*value.Value, error) {
	cfg := newConfig(opts)
	op := trace.Begin(cfg.logger, "jsontree.parse.reader")

	data, err := io.ReadAll(r)
	if err != nil {
		err = fmt.Errorf("parse reader: %w", err)
		op.End(err)
		return nil, err
	}
	if cfg.source.IsZero() {
		cfg.source = location.NewSourceID("<reader>")
	}
	v, err := run(data, cfg)
	op.End(err, slog.Int("size", len(data)))
	return v, err
}

// File opens path, parses its content as one document, and closes it.
// A [*ParseError] carries the file's canonical source identity; a read
// failure is wrapped with the path instead.
func File(path string, opts ...Option) (*value.Value, error) {
	cfg := newConfig(opts)
	op := trace.Begin(cfg.logger, "jsontree.parse.file", slog.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read %s: %w", path, err)
		op.End(err)
		return nil, err
	}
	if sid, err := location.SourceIDFromPath(path); err == nil {
		cfg.source = sid
	} else {
		cfg.source = location.NewSourceID(path)
	}
	v, err := run(data, cfg)
	op.End(err, slog.Int("size", len(data)))
	return v, err
}

// Into parses data and pushes the document into c as a stream of
// events, without materialising a tree. The first consumer error
// aborts the parse and is returned unchanged.
func Into(data []byte, c stream.Consumer, opts ...Option) error {
	cfg := newConfig(opts)
	op := trace.Begin(cfg.logger, "jsontree.parse.into", slog.Int("size", len(data)))
	err := drive(data, c, cfg)
	op.End(err)
	return err
}

// run parses data into a value tree via a stream.TreeBuilder.
func run(data []byte, cfg config) (*value.Value, error) {
	var b stream.TreeBuilder
	if err := drive(data, &b, cfg); err != nil {
		return nil, err
	}
	v, err := b.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// drive runs the state machine, stamping the configured source identity
// onto any parse error.
func drive(data []byte, sink stream.Consumer, cfg config) error {
	p := &parser{
		data:       data,
		sink:       sink,
		maxDepth:   cfg.maxDepth,
		strictKeys: cfg.strictKeys,
	}
	err := p.run()
	if perr, ok := err.(*ParseError); ok && !cfg.source.IsZero() {
		perr.Source = cfg.source
	}
	return err
}
