package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "wtwm/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"   nonsense   ", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInit_Get_Named_C_WithBatch(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:       "debug",
		Format:      "console",
		Service:     "wtwm",
		Component:   "root",
		Writer:      &buf,
		WithCaller:  true,
		SampleEvery: 2,
		StaticFields: map[string]string{
			"build": "test",
		},
	})

	// Re-sample each logger to N=1 so lines always emit
	rv := Get().Sample(&zerolog.BasicSampler{N: 1})
	rp := &rv
	rp.Info().Str("k", "v").Msg("root-msg")

	nv := Named("vocabwatch").Sample(&zerolog.BasicSampler{N: 1})
	np := &nv
	np.Info().Msg("named-msg")

	ctx := WithBatch(context.Background(), "b-123", "pattern_recogniser_v1")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	cp := &cv
	cp.Info().Msg("ctx-msg")

	bgv := C(context.Background()).Sample(&zerolog.BasicSampler{N: 1})
	bgp := &bgv
	bgp.Info().Msg("ctx-empty")

	out := buf.String()
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "vocabwatch")
	kit.MustContain(t, out, "batch_id=")
	kit.MustContain(t, out, "b-123")
	kit.MustContain(t, out, "recognizer=")
	kit.MustContain(t, out, "pattern_recogniser_v1")
	kit.MustContain(t, out, "build=")
	kit.MustContain(t, out, "service=")
}

func TestFromEnv_Independently(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "wtwm")
	t.Setenv("LOG_COMPONENT", "scan")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" {
		t.Fatalf("FromEnv Level = %q, want warn", opt.Level)
	}
	if opt.Format != "json" || opt.Service != "wtwm" || opt.Component != "scan" {
		t.Fatalf("FromEnv fields mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	opt := FromEnv()
	if !strings.EqualFold(opt.Level, "info") || opt.Format != "console" {
		t.Fatalf("FromEnv defaults mismatch: %+v", opt)
	}
}

func TestReplace_SwapsRoot(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	prev := Replace(&l)
	t.Cleanup(func() { Replace(prev) })

	Named("swap").Info().Msg("after-replace")
	kit.MustContain(t, buf.String(), "after-replace")
	kit.MustContain(t, buf.String(), `"component":"swap"`)
}
