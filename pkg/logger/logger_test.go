package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestInitWriterText(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, false)
	if err := SetLevelString("info"); err != nil {
		t.Fatalf("SetLevelString: %v", err)
	}

	Named("server").Info(context.Background(), "listening", String("addr", ":8080"))

	out := buf.String()
	for _, want := range []string{"msg=listening", "component=server", "addr=:8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, true)
	if err := SetLevelString("warn"); err != nil {
		t.Fatalf("SetLevelString: %v", err)
	}
	defer func() { _ = SetLevelString("info") }()

	ctx := context.Background()
	Get().Info(ctx, "hidden")
	Get().With(Bool("retry", true)).Error(ctx, "shown", Error(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"retry":true`) {
		t.Errorf("missing error record: %q", out)
	}
}

func TestSetLevelStringRejectsUnknown(t *testing.T) {
	if err := SetLevelString("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	Nop().Error(context.Background(), "dropped", Int("n", 1))
}
