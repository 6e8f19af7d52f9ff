// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package text_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/sansio"
	"code.hybscloud.com/sansio/text"
)

// prefixer writes every line back behind "sent: ".
func prefixer() kont.Eff[struct{}] {
	return sansio.Forever[struct{}](func() kont.Eff[struct{}] {
		return kont.Bind(text.ReadLine(), func(line []byte) kont.Eff[struct{}] {
			return text.WriteString("sent: " + string(line) + "\n")
		})
	})
}

func TestLinePrefixer(t *testing.T) {
	d := sansio.New(prefixer())

	if err := d.Send([]byte("partial")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if out, _ := d.Read(0); len(out) != 0 {
		t.Fatalf("Read got %q, want empty", out)
	}
	if err := d.Send([]byte(" line\n")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	out, err := d.Read(0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(out) != "sent: partial line\n" {
		t.Fatalf("Read got %q, want %q", out, "sent: partial line\n")
	}
}

func TestReadLine(t *testing.T) {
	d := sansio.New(kont.Map(text.ReadLine(), func(b []byte) string { return string(b) }))
	_ = d.Send([]byte("some"))
	_ = d.Send([]byte("line\nrest"))

	got, err := d.Result()
	if err != nil || got != "someline" {
		t.Fatalf("Result got %q, %v; want %q", got, err, "someline")
	}
	if d.Drained() {
		t.Fatal("trailing input was consumed")
	}
}

func TestWaitForDoesNotConsume(t *testing.T) {
	d := sansio.New(text.WaitFor([]byte(";")))
	_ = d.Send([]byte("abc;"))

	i, err := d.Result()
	if err != nil || i != 3 {
		t.Fatalf("Result got %d, %v; want 3", i, err)
	}
	if d.Drained() {
		t.Fatal("WaitFor consumed input")
	}
}

func TestReadUntilExcluded(t *testing.T) {
	proc := kont.Bind(text.ReadUntil([]byte(":"), false), func(key []byte) kont.Eff[string] {
		return sansio.ReadBind(1, func(sep []byte) kont.Eff[string] {
			return kont.Pure(string(key) + "|" + string(sep))
		})
	})
	d := sansio.New(proc)
	_ = d.Send([]byte("key:"))

	got, err := d.Result()
	if err != nil || got != "key|:" {
		t.Fatalf("Result got %q, %v; want %q", got, err, "key|:")
	}
}

func TestReadUntilLeadingDelimiter(t *testing.T) {
	d := sansio.New(text.ReadUntil([]byte("::"), false))
	_ = d.Send([]byte("::x"))

	got, err := d.Result()
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("Result got %q, %v; want empty non-nil", got, err)
	}
}

func TestReadStringKeepsPartialRune(t *testing.T) {
	proc := kont.Bind(text.ReadString(), func(a string) kont.Eff[string] {
		return kont.Map(text.ReadString(), func(b string) string {
			return a + "|" + b
		})
	})
	d := sansio.New(proc)

	_ = d.Send([]byte("h\xc3"))
	if d.HasResult() {
		t.Fatal("result before the rune completed")
	}
	_ = d.Send([]byte("\xa9llo"))

	got, err := d.Result()
	if err != nil || got != "h|éllo" {
		t.Fatalf("Result got %q, %v; want %q", got, err, "h|éllo")
	}
}

func TestReadStringInvalid(t *testing.T) {
	d := sansio.New(text.ReadString())

	if err := d.Send([]byte("\xff\xfe")); !errors.Is(err, text.ErrInvalidUTF8) {
		t.Fatalf("Send error got %v, want %v", err, text.ErrInvalidUTF8)
	}
}

func TestEmptyDelimiter(t *testing.T) {
	d := sansio.New(text.ReadUntil(nil, true))

	if _, err := d.Result(); !errors.Is(err, text.ErrEmptyDelimiter) {
		t.Fatalf("Result error got %v, want %v", err, text.ErrEmptyDelimiter)
	}
}

func BenchmarkReadLine(b *testing.B) {
	line := []byte("GET / HTTP/1.1\r\n")
	for b.Loop() {
		d := sansio.New(text.ReadLine())
		_ = d.Send(line)
		if !d.HasResult() {
			b.Fatal("no line")
		}
	}
}
