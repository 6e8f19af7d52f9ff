// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/phsym/console-slog"

	"code.hybscloud.com/sansio"
)

func TestWithLoggerTracesStates(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(console.NewHandler(&out, &console.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	d := sansio.New(lineParser(), sansio.WithLogger(logger))
	if err := d.Send([]byte("traced\n")); err != nil {
		t.Fatalf("Send: %v", err)
	}

	log := out.String()
	for _, want := range []string{"need-input", "ended", "serial"} {
		if !strings.Contains(log, want) {
			t.Fatalf("trace missing %q:\n%s", want, log)
		}
	}
}

func TestWithLoggerTracesFailure(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(console.NewHandler(&out, &console.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	d := sansio.New(magic(), sansio.WithLogger(logger))
	_ = d.Send([]byte("XXXX"))

	if !strings.Contains(out.String(), errBadMagic.Error()) {
		t.Fatalf("trace missing failure:\n%s", out.String())
	}
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	var out bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	d := sansio.New(lineParser(), sansio.WithLogger(nil))
	_ = d.Send([]byte("quiet\n"))
	if out.Len() != 0 {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
