// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Opts defines options for the Lexer's operations.
	Opts struct {
		Debug bool

		// Workers sizes the goroutine pool evaluating candidates; < 1 scans sequentially.
		Workers int

		// BufferSize is the capacity of the Item channel.
		BufferSize int

		Logger logrus.FieldLogger
	}
)

const (
	defBufferSize = 10

	// parallelThreshold is the smallest candidate set fanned out to the pool.
	parallelThreshold = 16
)

// NewOpts configures the lexer's Opts.
func NewOpts() *Opts {
	return &Opts{
		BufferSize: defBufferSize,
		Logger:     logrus.New(),
	}
}

// Validate populates missing Opts entries with defaults.
func (o *Opts) Validate() {
	if o.BufferSize < 1 {
		o.BufferSize = defBufferSize
	}
	if o.Workers < 0 {
		o.Workers = 0
	}
	if o.Logger == nil {
		o.Logger = logrus.New()
	}
}
