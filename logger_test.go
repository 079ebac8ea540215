package fontatlas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/fontatlas/charset"
)

// captureLogs installs a text logger at level for the duration of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	var h slog.Handler = nopHandler{}
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("nopHandler enabled for errors")
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() is not a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() is not a nopHandler")
	}

	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.Default())
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("SetLogger(nil) left a logger enabled for debug")
	}
}

func TestBuildLogLevels(t *testing.T) {
	// At 16px the set estimates to a 64-wide canvas: G wraps, x has no glyph.
	set := charset.FromString("ABCDEFGHx")

	tests := []struct {
		level   slog.Level
		want    []string
		notWant []string
	}{
		{
			level: slog.LevelDebug,
			want: []string{
				"level=DEBUG msg=\"fontatlas: canvas estimated\"",
				"level=DEBUG msg=\"fontatlas: no glyph, skipping\" char=x",
				"level=DEBUG msg=\"fontatlas: row wrap\" char=G y=16",
				"level=INFO msg=\"fontatlas: atlas built\" width=64",
				"entries=8",
			},
		},
		{
			level:   slog.LevelInfo,
			want:    []string{"level=INFO msg=\"fontatlas: atlas built\""},
			notWant: []string{"row wrap", "no glyph", "canvas estimated"},
		},
		{
			level:   slog.LevelWarn,
			notWant: []string{"fontatlas:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf := captureLogs(t, tt.level)

			if _, err := Build(newBoxRasterizer("ABCDEFGH"), set, WithPixelSize(16)); err != nil {
				t.Fatalf("Build failed: %v", err)
			}

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("log output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("log output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestLateTextureLimitsLogWarn(t *testing.T) {
	resetWidthTable(t)
	StandardWidths()

	buf := captureLogs(t, slog.LevelWarn)
	SetTextureLimits(TextureLimitsFunc(func() int { return 1024 }))

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("late SetTextureLimits did not warn:\n%s", buf.String())
	}
	if got := StandardWidths().Max(); got != DefaultMaxTextureDimension {
		t.Errorf("StandardWidths().Max() = %d, want %d", got, DefaultMaxTextureDimension)
	}
}

func TestLoggerConcurrentBuilds(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
				SetLogger(nil)
				return
			}
			if _, err := Build(newBoxRasterizer("ab"), charset.FromString("ab"), WithPixelSize(8)); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
}
