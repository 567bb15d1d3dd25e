// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

import "github.com/pk910/go-ssz-schema/ssztypes"

// Options configures a Codec. The zero value is a silent, default-depth
// codec — exactly what the package-level Serialize/Deserialize/Size/
// Validate functions use.
type Options struct {
	logger  func(format string, args ...any)
	verbose bool
}

// Option configures an Options value, mirroring the teacher's
// DynSszOption functional-options pattern.
type Option func(*Options)

// WithLogger sets a printf-style trace callback, invoked for notable
// decisions a Codec makes (currently: none by default — callers wanting
// Verbose tracing combine this with WithVerbose). Defaults to a no-op.
func WithLogger(fn func(format string, args ...any)) Option {
	return func(o *Options) {
		o.logger = fn
	}
}

// WithVerbose toggles whether a Codec calls its logger at all: when off,
// neither routine operations nor failures are logged.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.verbose = v
	}
}

// WithMaxDepth bounds the nesting depth accepted by type construction
// (spec §5's recursion-bounding requirement). It adjusts the package-wide
// ssztypes.MaxDepth, since descriptors are parsed independently of any
// particular Codec.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		ssztypes.MaxDepth = n
	}
}

func noopLog(string, ...any) {}

// Codec bundles a logger and depth configuration around the package-level
// Serialize/Deserialize/Size/Validate functions. It carries no mutable
// state beyond its Options and is safe for concurrent use (spec §5).
type Codec struct {
	opts Options
}

// NewCodec builds a Codec from the given options.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{opts: Options{logger: noopLog}}
	for _, opt := range opts {
		opt(&c.opts)
	}
	if c.opts.logger == nil {
		c.opts.logger = noopLog
	}
	return c
}

func (c *Codec) log(format string, args ...any) {
	if c.opts.verbose {
		c.opts.logger(format, args...)
	}
}

// Validate asserts v conforms to t.
func (c *Codec) Validate(v any, t *ssztypes.Type) error {
	return Validate(v, t)
}

// Size returns the serialized length of v under t.
func (c *Codec) Size(v any, t *ssztypes.Type) (int, error) {
	return Size(v, t)
}

// Serialize encodes v under t.
func (c *Codec) Serialize(v any, t *ssztypes.Type) ([]byte, error) {
	c.log("serializing kind=%s", t.Kind())
	out, err := Serialize(v, t)
	if err != nil {
		c.log("serialize failed: %v", err)
	}
	return out, err
}

// Deserialize decodes data under t.
func (c *Codec) Deserialize(data []byte, t *ssztypes.Type) (any, error) {
	c.log("deserializing kind=%s, %d bytes", t.Kind(), len(data))
	v, err := Deserialize(data, t)
	if err != nil {
		c.log("deserialize failed: %v", err)
	}
	return v, err
}

// ParseType normalizes shorthand into a *ssztypes.Type.
func (c *Codec) ParseType(shorthand ssztypes.Shorthand) (*ssztypes.Type, error) {
	return ssztypes.ParseType(shorthand)
}
