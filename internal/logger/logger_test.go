package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	ctx := WithContext(context.Background(), log)
	got := FromContext(ctx)

	got.Info().Str("run_id", "abc").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"run_id":"abc"`) {
		t.Errorf("output missing run_id field: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("output missing message: %s", out)
	}
}

func TestFromContext_Fallback(t *testing.T) {
	// A context without a logger yields a usable default.
	log := FromContext(context.Background())
	log.Debug().Msg("no-op")
}
