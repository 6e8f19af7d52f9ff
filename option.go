// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"log/slog"
)

// Option configures a Driver.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// discardLogger is shared by every driver created without WithLogger.
var discardLogger = slog.New(slog.DiscardHandler)

// WithLogger traces driver state transitions on l at debug level.
// A nil logger disables tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger
	}
	return o
}
