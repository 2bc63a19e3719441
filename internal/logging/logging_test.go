package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("text", slog.LevelDebug, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}

	ctx := context.Background()
	log.Info(ctx, "manifest set generated", "objects", 20)
	out := buf.String()
	if !strings.Contains(out, "manifest set generated") || !strings.Contains(out, "objects=20") {
		t.Errorf("unexpected output: %s", out)
	}

	buf.Reset()
	log.Debugf(ctx, "component %s ready", "dovecot")
	if !strings.Contains(buf.String(), "component dovecot ready") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("json", slog.LevelInfo, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	log.Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, err := New("xml", slog.LevelInfo); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("text", slog.LevelWarn, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	log.Debug(context.Background(), "quiet")
	log.Info(context.Background(), "quiet")
	if buf.Len() != 0 {
		t.Errorf("below-level messages written: %s", buf.String())
	}
	log.Warn(context.Background(), "loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warning not written: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log, _ := NewWithWriter("text", slog.LevelInfo, &buf)
	log.With("release", "mail").Info(context.Background(), "build done")
	if !strings.Contains(buf.String(), "release=mail") {
		t.Errorf("bound attribute missing: %s", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Absent a logger the context yields a working discard logger.
	log := FromContext(ctx)
	if log == nil {
		t.Fatal("FromContext returned nil")
	}
	log.Info(ctx, "dropped")

	var buf bytes.Buffer
	bound, _ := NewWithWriter("text", slog.LevelInfo, &buf)
	ctx = WithLogger(ctx, bound)
	FromContext(ctx).Info(ctx, "carried")
	if !strings.Contains(buf.String(), "carried") {
		t.Errorf("context logger not used: %s", buf.String())
	}
}
