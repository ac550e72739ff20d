package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSnapshotDumpEmptyState(t *testing.T) {
	t.Setenv("TWIGPANES_STATE_DIR", t.TempDir())
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	if err := app.Run(context.Background(), []string{"twigpanes", "snapshot", "dump"}); err != nil {
		t.Fatalf("snapshot dump error: %v", err)
	}
	if !strings.Contains(out.String(), "\"version\"") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestSnapshotReset(t *testing.T) {
	t.Setenv("TWIGPANES_STATE_DIR", t.TempDir())
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	if err := app.Run(context.Background(), []string{"twigpanes", "snapshot", "reset"}); err != nil {
		t.Fatalf("snapshot reset error: %v", err)
	}
	if !strings.Contains(out.String(), "cleared") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}
