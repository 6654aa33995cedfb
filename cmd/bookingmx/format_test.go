package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout replaces os.Stdout with a pipe, calls f, then returns the
// captured output and restores os.Stdout. It is NOT safe for parallel use
// because os.Stdout is a package-level variable.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		io.Copy(&buf, r) //nolint:errcheck
		close(done)
	}()

	f()

	w.Close()
	<-done
	os.Stdout = orig
	r.Close()
	return buf.String()
}

func TestFormatJSON(t *testing.T) {
	type sample struct {
		ID    int64  `json:"id"`
		Guest string `json:"guestName"`
	}

	got := captureStdout(t, func() {
		if err := formatJSON(sample{ID: 7, Guest: "Ana"}); err != nil {
			t.Errorf("formatJSON: %v", err)
		}
	})

	var out sample
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, got)
	}
	if out.ID != 7 || out.Guest != "Ana" {
		t.Errorf("got %+v", out)
	}
	if !strings.Contains(got, "\n  \"id\"") {
		t.Errorf("expected indented output, got %q", got)
	}
}

func TestFormatTable(t *testing.T) {
	got := captureStdout(t, func() {
		formatTable([]string{"CITY", "KM"}, [][]string{{"Zapopan", "10"}, {"Chapala", "50"}})
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	want := []string{
		"CITY     KM",
		"-------  --",
		"Zapopan  10",
		"Chapala  50",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestOutputQuiet(t *testing.T) {
	resetFlags(t)
	flagFmt = "quiet"

	got := captureStdout(t, func() {
		if err := output(map[string]int{"id": 3}, "3"); err != nil {
			t.Errorf("output: %v", err)
		}
	})
	if got != "3\n" {
		t.Errorf("got %q, want %q", got, "3\n")
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"json", "table", "quiet"} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q): %v", f, err)
		}
	}
	if err := validateFormat("yaml"); err == nil {
		t.Error("expected error for yaml")
	}
}
