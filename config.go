// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

// defaultMaxFrameBuffer bounds the size of the frame buffer a single
// tag is allowed to declare, so a corrupt or adversarial size field
// can't force an unbounded allocation.
const defaultMaxFrameBuffer = 16 << 20 // 16MiB

// Config holds the tunables for Open. The zero Config is usable; Open
// always applies defaultMaxFrameBuffer when MaxFrameBuffer is zero.
type Config struct {
	// MaxFrameBuffer caps the byte size a tag's declared frame buffer
	// may have. Tags declaring a larger size fail with
	// ErrFrameBufferTooLarge before any frame bytes are read, so a
	// corrupt or adversarial size field cannot force an unbounded
	// allocation.
	MaxFrameBuffer int
}

// Option configures a Parser constructed by Open, following the
// functional-options idiom the pack's configuration-bearing examples
// use for optional tunables.
type Option func(*Config)

// WithMaxFrameBuffer overrides the default cap on a tag's declared
// frame buffer size.
func WithMaxFrameBuffer(n int) Option {
	return func(c *Config) {
		c.MaxFrameBuffer = n
	}
}

func (c Config) withDefaults() Config {
	if c.MaxFrameBuffer <= 0 {
		c.MaxFrameBuffer = defaultMaxFrameBuffer
	}
	return c
}
