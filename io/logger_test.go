//nolint:testpackage // using package name 'argio' to pin the logger clock
package argio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()
	return NewLogger(m), &out, &errOut
}

func TestLogger_TaggedRouting(t *testing.T) {
	l, out, errOut := newTestLogger()

	l.Info("parsed %d args", 3)
	l.Success("done")
	l.Warning("token %q is shadowed", "-h")
	l.Error("Unknown option: near the arg '%s'.", "-x")

	assert.Equal(t, "[INFO] parsed 3 args\n[SUCCESS] done\n", out.String())
	assert.Equal(t,
		"[WARN] token \"-h\" is shadowed\n[ERROR] Unknown option: near the arg '-x'.\n",
		errOut.String())
}

func TestLogger_ErrorsToStdout(t *testing.T) {
	l, out, errOut := newTestLogger()
	l.ErrorsToStderr(false)

	l.Error("boom")
	assert.Equal(t, "[ERROR] boom\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestLogger_LevelFilter(t *testing.T) {
	l, out, _ := newTestLogger()

	l.Debug("hidden")
	assert.Empty(t, out.String(), "debug is below the default level")

	l.WithLevel(LevelDebug).Debug("visible")
	assert.Equal(t, "[DEBUG] visible\n", out.String())

	assert.False(t, l.WithLevel(LevelError).Enabled(LevelWarning))
}

func TestLogger_NilIsSilent(t *testing.T) {
	var l *Logger
	assert.False(t, l.Enabled(LevelError))
	l.Error("nothing happens")
}

func TestLogger_Formats(t *testing.T) {
	tests := []struct {
		format LogFormat
		want   string
	}{
		{LogFormatTagged, "[INFO] hi\n"},
		{LogFormatSymbols, "◆ hi\n"},
		{LogFormatPlain, "hi\n"},
	}
	for _, tt := range tests {
		l, out, _ := newTestLogger()
		l.WithFormat(tt.format).Info("hi")
		assert.Equal(t, tt.want, out.String())
	}
}

func TestLogger_Timestamp(t *testing.T) {
	l, out, _ := newTestLogger()
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.WithTimestamp(true).Info("tick")
	assert.Equal(t, "[INFO] [03:04:05] tick\n", out.String())

	out.Reset()
	l.WithTimeFormat("2006-01-02").WithFormat(LogFormatPlain).Info("tick")
	assert.Equal(t, "[2024-01-02] tick\n", out.String())
}

func TestLogger_BlankMessageUnprefixed(t *testing.T) {
	l, out, _ := newTestLogger()
	l.Info("  ")
	assert.Equal(t, "  \n", out.String())
}

func TestLogger_Colors(t *testing.T) {
	var errOut bytes.Buffer
	l := NewLogger(New().WithErr(&errOut).ForceColor())

	l.Error("bad")
	line := errOut.String()
	assert.True(t, strings.HasPrefix(line, "\x1b[31m"), "got %q", line)
	assert.Contains(t, line, "[ERROR] bad")
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarning.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
