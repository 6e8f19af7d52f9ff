// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/sansio"
)

func TestSplicePingPong(t *testing.T) {
	client := sansio.New(sansio.WriteThen([]byte("PING\n"), lineParser()))
	server := sansio.New(kont.Bind(lineParser(), func(line string) kont.Eff[string] {
		return sansio.WriteThen([]byte("PONG\n"), kont.Pure(line))
	}))

	moved, err := sansio.Splice(client, server)
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if moved != 10 {
		t.Fatalf("moved got %d, want 10", moved)
	}

	got, err := client.Result()
	if err != nil || got != "PONG" {
		t.Fatalf("client result got %q, %v; want %q", got, err, "PONG")
	}
	got, err = server.Result()
	if err != nil || got != "PING" {
		t.Fatalf("server result got %q, %v; want %q", got, err, "PING")
	}
}

func TestSpliceIdlePair(t *testing.T) {
	a := sansio.New(lineParser())
	b := sansio.New(lineParser())

	moved, err := sansio.Splice(a, b)
	if err != nil || moved != 0 {
		t.Fatalf("Splice got %d, %v; want 0, nil", moved, err)
	}
}

func TestSpliceReportsFailure(t *testing.T) {
	client := sansio.New(sansio.WriteThen([]byte("PONG"), kont.Pure(struct{}{})))
	server := sansio.New(magic())

	moved, err := sansio.Splice(client, server)
	if !errors.Is(err, errBadMagic) {
		t.Fatalf("Splice error got %v, want %v", err, errBadMagic)
	}
	if moved != 4 {
		t.Fatalf("moved got %d, want 4", moved)
	}
}
