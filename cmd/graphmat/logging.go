// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/graphmat/config"
)

// newLogger builds the slog handler selected by the workload.
func newLogger(w io.Writer, lc config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
